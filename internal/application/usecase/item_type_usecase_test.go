package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
)

type fakeItemTypeRepo struct {
	types map[string]entity.ItemType
}

func newFakeItemTypeRepo() *fakeItemTypeRepo {
	return &fakeItemTypeRepo{types: map[string]entity.ItemType{}}
}

func (r *fakeItemTypeRepo) Create(t *entity.ItemType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *fakeItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	if t, ok := r.types[id]; ok {
		c := t
		return &c, nil
	}
	return nil, nil
}

func (r *fakeItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	for _, t := range r.types {
		if t.Name == name {
			c := t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeItemTypeRepo) Update(t *entity.ItemType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *fakeItemTypeRepo) List() ([]*entity.ItemType, error) {
	out := make([]*entity.ItemType, 0, len(r.types))
	for _, t := range r.types {
		c := t
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeItemTypeRepo) Delete(id string) error {
	delete(r.types, id)
	return nil
}

// Le nom de type est unique.
func TestItemTypeCreate_NomDuplique(t *testing.T) {
	uc := usecase.NewItemTypeUseCase(newFakeItemTypeRepo())

	_, err := uc.Create(dto.ItemTypeRequest{Name: "fourniture"})
	require.NoError(t, err)

	_, err = uc.Create(dto.ItemTypeRequest{Name: "fourniture"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Renommer vers un nom déjà pris est refusé; garder le sien est permis.
func TestItemTypeUpdate_NomDuplique(t *testing.T) {
	uc := usecase.NewItemTypeUseCase(newFakeItemTypeRepo())

	a, err := uc.Create(dto.ItemTypeRequest{Name: "fourniture"})
	require.NoError(t, err)
	_, err = uc.Create(dto.ItemTypeRequest{Name: "appareil"})
	require.NoError(t, err)

	_, err = uc.Update(a.ID, dto.ItemTypeRequest{Name: "appareil"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Update(a.ID, dto.ItemTypeRequest{Name: "fourniture", Description: "consommables"})
	require.NoError(t, err)
	assert.Equal(t, "consommables", out.Description)
}

func TestItemTypeCreate_NomRequis(t *testing.T) {
	uc := usecase.NewItemTypeUseCase(newFakeItemTypeRepo())
	_, err := uc.Create(dto.ItemTypeRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
