package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/usecase"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositories en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fakeFournisseurRepo struct {
	fournisseurs map[string]entity.Fournisseur
}

func newFakeFournisseurRepo() *fakeFournisseurRepo {
	return &fakeFournisseurRepo{fournisseurs: map[string]entity.Fournisseur{}}
}

func (r *fakeFournisseurRepo) Create(f *entity.Fournisseur) error {
	r.fournisseurs[f.ID] = *f
	return nil
}

func (r *fakeFournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	if f, ok := r.fournisseurs[id]; ok {
		c := f
		return &c, nil
	}
	return nil, nil
}

func (r *fakeFournisseurRepo) GetByCode(code string) (*entity.Fournisseur, error) {
	for _, f := range r.fournisseurs {
		if f.Code == code {
			c := f
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeFournisseurRepo) Update(f *entity.Fournisseur) error {
	r.fournisseurs[f.ID] = *f
	return nil
}

func (r *fakeFournisseurRepo) List() ([]*entity.Fournisseur, error) {
	out := make([]*entity.Fournisseur, 0, len(r.fournisseurs))
	for _, f := range r.fournisseurs {
		c := f
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeFournisseurRepo) Delete(id string) error {
	delete(r.fournisseurs, id)
	return nil
}

type fakeTransactionRepo struct {
	txs []entity.Transaction
}

func (r *fakeTransactionRepo) Create(t *entity.Transaction) error {
	r.txs = append(r.txs, *t)
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for i := range r.txs {
		if r.txs[i].ID == id {
			c := r.txs[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) Update(t *entity.Transaction) error {
	for i := range r.txs {
		if r.txs[i].ID == t.ID {
			r.txs[i] = *t
			return nil
		}
	}
	return nil
}

func (r *fakeTransactionRepo) List() ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.txs))
	for i := range r.txs {
		c := r.txs[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByFournisseur(fournisseurID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := range r.txs {
		if r.txs[i].FournisseurID == fournisseurID {
			c := r.txs[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(id string) error {
	kept := r.txs[:0]
	for _, tx := range r.txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	r.txs = kept
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FournisseurUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Le code fournisseur est unique : la seconde création avec le même code est
// refusée avant toute écriture.
func TestFournisseurCreate_CodeDuplique(t *testing.T) {
	repo := newFakeFournisseurRepo()
	uc := usecase.NewFournisseurUseCase(repo, &fakeTransactionRepo{})

	_, err := uc.Create(dto.FournisseurRequest{Code: "F-001", Nom: "Tissus Mada"})
	require.NoError(t, err)

	_, err = uc.Create(dto.FournisseurRequest{Code: "F-001", Nom: "Autre nom"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.fournisseurs, 1, "rien n'est écrit pour le doublon")
}

// Le renommage vers le code d'un autre fournisseur est refusé; reprendre son
// propre code est permis.
func TestFournisseurUpdate_CodeDuplique(t *testing.T) {
	repo := newFakeFournisseurRepo()
	uc := usecase.NewFournisseurUseCase(repo, &fakeTransactionRepo{})

	a, err := uc.Create(dto.FournisseurRequest{Code: "F-001", Nom: "A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.FournisseurRequest{Code: "F-002", Nom: "B"})
	require.NoError(t, err)

	_, err = uc.Update(a.ID, dto.FournisseurRequest{Code: "F-002", Nom: "A"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(a.ID, dto.FournisseurRequest{Code: "F-001", Nom: "A renommé"})
	assert.NoError(t, err, "garder son propre code n'est pas un doublon")
}

// Le solde affiché est recalculé par le ledger, jamais relu depuis les
// instantanés persistés.
func TestFournisseurSolde_RecalculeParLeLedger(t *testing.T) {
	repo := newFakeFournisseurRepo()
	txRepo := &fakeTransactionRepo{}
	uc := usecase.NewFournisseurUseCase(repo, txRepo)

	f, err := uc.Create(dto.FournisseurRequest{Code: "F-001", Nom: "Tissus Mada"})
	require.NoError(t, err)

	jour := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// Instantanés volontairement faux : le solde ne doit pas les croire.
	txRepo.txs = []entity.Transaction{
		{ID: "t1", FournisseurID: f.ID, Date: jour, Achat: decimal.NewFromInt(1000), Reste: decimal.NewFromInt(9999)},
		{ID: "t2", FournisseurID: f.ID, Date: jour.AddDate(0, 0, 5), Virement: decimal.NewFromInt(400), Reste: decimal.NewFromInt(-1)},
	}

	solde, err := uc.Solde(f.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(solde.TotalAchats))
	assert.True(t, decimal.NewFromInt(400).Equal(solde.TotalVirements))
	assert.True(t, decimal.NewFromInt(600).Equal(solde.Reste), "1000 d'achats moins 400 de virements")
}

func TestFournisseurSolde_Inconnu(t *testing.T) {
	uc := usecase.NewFournisseurUseCase(newFakeFournisseurRepo(), &fakeTransactionRepo{})
	solde, err := uc.Solde("absent")
	require.NoError(t, err)
	assert.Nil(t, solde)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TransactionUseCase — instantané reste
// ──────────────────────────────────────────────────────────────────────────────

// L'instantané reste posé à la création vaut le solde cumulé du fournisseur
// après cette transaction.
func TestTransactionCreate_InstantaneReste(t *testing.T) {
	fRepo := newFakeFournisseurRepo()
	txRepo := &fakeTransactionRepo{}
	fuc := usecase.NewFournisseurUseCase(fRepo, txRepo)
	tuc := usecase.NewTransactionUseCase(txRepo, fRepo)

	f, err := fuc.Create(dto.FournisseurRequest{Code: "F-001", Nom: "Tissus Mada"})
	require.NoError(t, err)

	jour := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	achat, err := tuc.Create(dto.TransactionRequest{
		Date:        jour,
		Fournisseur: dto.Ref{ID: f.ID},
		Achat:       decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(achat.Reste))

	virement, err := tuc.Create(dto.TransactionRequest{
		Date:        jour.AddDate(0, 0, 5),
		Fournisseur: dto.Ref{ID: f.ID},
		Virement:    decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(600).Equal(virement.Reste))
}

func TestTransactionCreate_MontantNegatif(t *testing.T) {
	fRepo := newFakeFournisseurRepo()
	tuc := usecase.NewTransactionUseCase(&fakeTransactionRepo{}, fRepo)

	_, err := tuc.Create(dto.TransactionRequest{
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Fournisseur: dto.Ref{ID: "f1"},
		Achat:       decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransactionCreate_FournisseurInconnu(t *testing.T) {
	tuc := usecase.NewTransactionUseCase(&fakeTransactionRepo{}, newFakeFournisseurRepo())
	_, err := tuc.Create(dto.TransactionRequest{
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Fournisseur: dto.Ref{ID: "absent"},
		Achat:       decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
