package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// ItemTypeUseCase CRUD types d'article. Le nom est unique.
type ItemTypeUseCase struct {
	repo repository.ItemTypeRepository
}

// NewItemTypeUseCase construit le cas d'usage.
func NewItemTypeUseCase(repo repository.ItemTypeRepository) *ItemTypeUseCase {
	return &ItemTypeUseCase{repo: repo}
}

// Create crée un type. Nom dupliqué -> ErrDuplicate.
func (uc *ItemTypeUseCase) Create(in dto.ItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	t := &entity.ItemType{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toItemTypeResponse(t), nil
}

// GetByID renvoie un type par ID.
func (uc *ItemTypeUseCase) GetByID(id string) (*dto.ItemTypeResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toItemTypeResponse(t), nil
}

// Update remplace un type; le nouveau nom doit rester unique.
func (uc *ItemTypeUseCase) Update(id string, in dto.ItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	other, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	t.Name = in.Name
	t.Description = in.Description
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toItemTypeResponse(t), nil
}

// List renvoie tous les types.
func (uc *ItemTypeUseCase) List() ([]dto.ItemTypeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toItemTypeResponse(t))
	}
	return out, nil
}

// Delete supprime un type.
func (uc *ItemTypeUseCase) Delete(id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toItemTypeResponse(t *entity.ItemType) *dto.ItemTypeResponse {
	return &dto.ItemTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
