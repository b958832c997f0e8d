package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/ledger"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// FournisseurUseCase CRUD fournisseurs. Le code est unique (vérifié avant
// toute écriture); les soldes affichés sont recalculés par le ledger.
type FournisseurUseCase struct {
	repo   repository.FournisseurRepository
	txRepo repository.TransactionRepository
}

// NewFournisseurUseCase construit le cas d'usage.
func NewFournisseurUseCase(repo repository.FournisseurRepository, txRepo repository.TransactionRepository) *FournisseurUseCase {
	return &FournisseurUseCase{repo: repo, txRepo: txRepo}
}

// Create crée un fournisseur. Code dupliqué -> ErrDuplicate.
func (uc *FournisseurUseCase) Create(in dto.FournisseurRequest) (*dto.FournisseurResponse, error) {
	if in.Code == "" || in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	f := &entity.Fournisseur{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Nom:       in.Nom,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return uc.toResponse(f, nil, false), nil
}

// GetByID renvoie un fournisseur avec ses transactions embarquées (vue
// dénormalisée; la liste autoritaire reste la collection transactions).
func (uc *FournisseurUseCase) GetByID(id string) (*dto.FournisseurResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	txs, err := uc.txRepo.ListByFournisseur(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(f, txs, true), nil
}

// Update remplace un fournisseur (pas de PATCH). Le nouveau code doit rester
// unique parmi les autres fournisseurs.
func (uc *FournisseurUseCase) Update(id string, in dto.FournisseurRequest) (*dto.FournisseurResponse, error) {
	if in.Code == "" || in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	other, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	f.Code = in.Code
	f.Nom = in.Nom
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return uc.toResponse(f, nil, false), nil
}

// List renvoie tous les fournisseurs avec leur solde cumulé final (le
// filtrage, le tri et la pagination se font dans la couche HTTP).
func (uc *FournisseurUseCase) List() ([]dto.FournisseurResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	all := derefTransactions(txs)
	out := make([]dto.FournisseurResponse, 0, len(list))
	for _, f := range list {
		t := ledger.TotauxAsOf(all, f.ID, "")
		out = append(out, dto.FournisseurResponse{
			ID:             f.ID,
			Code:           f.Code,
			Nom:            f.Nom,
			TotalAchats:    t.TotalAchats,
			TotalVirements: t.TotalVirements,
			Reste:          t.Reste(),
			CreatedAt:      f.CreatedAt,
			UpdatedAt:      f.UpdatedAt,
		})
	}
	return out, nil
}

// Solde renvoie le solde cumulé final du fournisseur.
func (uc *FournisseurUseCase) Solde(id string) (*dto.SoldeResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	txs, err := uc.txRepo.ListByFournisseur(id)
	if err != nil {
		return nil, err
	}
	t := ledger.TotauxAsOf(derefTransactions(txs), id, "")
	return &dto.SoldeResponse{
		FournisseurID:  id,
		TotalAchats:    t.TotalAchats,
		TotalVirements: t.TotalVirements,
		Reste:          t.Reste(),
	}, nil
}

// Delete supprime un fournisseur.
func (uc *FournisseurUseCase) Delete(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// toResponse assemble la réponse; withTx embarque les transactions avec leur
// reste recalculé ligne à ligne.
func (uc *FournisseurUseCase) toResponse(f *entity.Fournisseur, txs []*entity.Transaction, withTx bool) *dto.FournisseurResponse {
	all := derefTransactions(txs)
	t := ledger.TotauxAsOf(all, f.ID, "")
	resp := &dto.FournisseurResponse{
		ID:             f.ID,
		Code:           f.Code,
		Nom:            f.Nom,
		TotalAchats:    t.TotalAchats,
		TotalVirements: t.TotalVirements,
		Reste:          t.Reste(),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	if withTx {
		resp.Transactions = make([]dto.TransactionResponse, 0, len(all))
		for _, tx := range all {
			resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
				ID:   tx.ID,
				Date: tx.Date,
				Fournisseur: dto.TransactionFournisseur{
					ID:   f.ID,
					Code: f.Code,
					Nom:  f.Nom,
				},
				Achat:       tx.Achat,
				Virement:    tx.Virement,
				Reste:       ledger.ResteAsOf(all, f.ID, tx.ID),
				Description: tx.Description,
				CreatedAt:   tx.CreatedAt,
			})
		}
	}
	return resp
}

func derefTransactions(txs []*entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx != nil {
			out = append(out, *tx)
		}
	}
	return out
}
