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

// TransactionUseCase CRUD transactions. Le champ reste persisté n'est qu'un
// instantané à l'écriture; toute lecture cumulée repasse par le ledger.
type TransactionUseCase struct {
	repo  repository.TransactionRepository
	fRepo repository.FournisseurRepository
}

// NewTransactionUseCase construit le cas d'usage.
func NewTransactionUseCase(repo repository.TransactionRepository, fRepo repository.FournisseurRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, fRepo: fRepo}
}

// Create enregistre une transaction. Achat et virement doivent être >= 0 et
// le fournisseur référencé (IRI ou objet) doit exister. L'instantané reste
// est le solde cumulé du fournisseur après cette transaction.
func (uc *TransactionUseCase) Create(in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if in.Fournisseur.IsZero() || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Achat.IsNegative() || in.Virement.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	f, err := uc.fRepo.GetByID(in.Fournisseur.ID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.repo.ListByFournisseur(f.ID)
	if err != nil {
		return nil, err
	}
	snapshot := ledger.ResteFinal(derefTransactions(existing), f.ID).
		Add(in.Achat).Sub(in.Virement)

	now := time.Now()
	tx := &entity.Transaction{
		ID:            uuid.New().String(),
		FournisseurID: f.ID,
		Date:          in.Date,
		Achat:         in.Achat,
		Virement:      in.Virement,
		Reste:         snapshot,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return uc.toResponse(tx, f)
}

// GetByID renvoie une transaction avec son reste cumulé recalculé.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	f, err := uc.fRepo.GetByID(tx.FournisseurID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(tx, f)
}

// Update remplace une transaction (PUT complet). L'instantané reste est
// reposé pour cette transaction; les instantanés des autres transactions ne
// sont pas corrigés rétroactivement.
func (uc *TransactionUseCase) Update(id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	if in.Achat.IsNegative() || in.Virement.IsNegative() || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	fournisseurID := tx.FournisseurID
	if !in.Fournisseur.IsZero() {
		fournisseurID = in.Fournisseur.ID
	}
	f, err := uc.fRepo.GetByID(fournisseurID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	tx.FournisseurID = f.ID
	tx.Date = in.Date
	tx.Achat = in.Achat
	tx.Virement = in.Virement
	tx.Description = in.Description
	tx.UpdatedAt = time.Now()

	all, err := uc.repo.ListByFournisseur(f.ID)
	if err != nil {
		return nil, err
	}
	merged := replaceTransaction(derefTransactions(all), *tx)
	tx.Reste = ledger.ResteAsOf(merged, f.ID, tx.ID)

	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	return uc.toResponse(tx, f)
}

// List renvoie toutes les transactions, chacune avec son reste cumulé
// recalculé ligne à ligne (O(n log n) par ligne, volumes faibles).
func (uc *TransactionUseCase) List() ([]dto.TransactionResponse, error) {
	txs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	fournisseurs, err := uc.fRepo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Fournisseur, len(fournisseurs))
	for _, f := range fournisseurs {
		byID[f.ID] = f
	}

	all := derefTransactions(txs)
	out := make([]dto.TransactionResponse, 0, len(all))
	for _, tx := range all {
		fv := dto.TransactionFournisseur{ID: tx.FournisseurID}
		if f := byID[tx.FournisseurID]; f != nil {
			fv.Code = f.Code
			fv.Nom = f.Nom
		}
		out = append(out, dto.TransactionResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Fournisseur: fv,
			Achat:       tx.Achat,
			Virement:    tx.Virement,
			Reste:       ledger.ResteAsOf(all, tx.FournisseurID, tx.ID),
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return out, nil
}

// Delete supprime une transaction. Les instantanés des transactions restantes
// ne sont pas corrigés : l'affichage cumulé recalcule toujours.
func (uc *TransactionUseCase) Delete(id string) error {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *TransactionUseCase) toResponse(tx *entity.Transaction, f *entity.Fournisseur) (*dto.TransactionResponse, error) {
	all, err := uc.repo.ListByFournisseur(tx.FournisseurID)
	if err != nil {
		return nil, err
	}
	merged := replaceTransaction(derefTransactions(all), *tx)
	reste := ledger.ResteAsOf(merged, tx.FournisseurID, tx.ID)
	fv := dto.TransactionFournisseur{ID: tx.FournisseurID}
	if f != nil {
		fv.Code = f.Code
		fv.Nom = f.Nom
	}
	return &dto.TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Fournisseur: fv,
		Achat:       tx.Achat,
		Virement:    tx.Virement,
		Reste:       reste,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}, nil
}

// replaceTransaction substitue (ou ajoute) tx dans la liste, pour recalculer
// un solde avant que la persistance ne soit relue.
func replaceTransaction(txs []entity.Transaction, tx entity.Transaction) []entity.Transaction {
	for i := range txs {
		if txs[i].ID == tx.ID {
			txs[i] = tx
			return txs
		}
	}
	return append(txs, tx)
}
