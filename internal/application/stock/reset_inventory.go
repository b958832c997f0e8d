package stock

import (
	"context"
	"time"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
)

// ResetColorStock corrige manuellement l'inventaire d'une couleur : le stock
// est posé à newValue et l'historique de mouvements de cette couleur est
// effacé (uniquement cette couleur, jamais ses sœurs).
//
// Les étapes sont séquentielles et chacune doit aboutir avant la suivante.
// Sur échec on s'arrête et l'erreur remonte; ce qui est déjà écrit reste
// écrit, aucune transaction compensatoire n'est tentée (risque accepté,
// consigné dans DESIGN.md).
func (uc *UseCase) ResetColorStock(ctx context.Context, colorStockID string, in dto.ResetInventoryRequest) (*dto.StockItemResponse, error) {
	if in.NewValue < 0 {
		return nil, domain.ErrInvalidInput
	}

	cs, err := uc.colorRepo.GetByID(colorStockID)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, domain.ErrNotFound
	}

	// 1. Relecture fraîche du parent : liste d'enfants autoritaire.
	item, err := uc.itemRepo.GetByID(cs.StockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.HasColors {
		return nil, domain.ErrConflict
	}

	// 2. Pose du nouveau stock sur la couleur cible.
	now := time.Now()
	cs.StockInitial = in.NewValue
	cs.StockRestant = in.NewValue
	cs.NbEntrees = 0
	cs.NbSorties = 0
	cs.UpdatedAt = now
	if err := uc.colorRepo.Update(cs); err != nil {
		return nil, err
	}

	// 3. Effacement des mouvements de cette couleur uniquement.
	if err := uc.colorMovRepo.DeleteByColorStock(cs.ID); err != nil {
		return nil, err
	}

	// 4. Re-résolution des références couleur du parent et resoumission du
	// parent complet avec la date d'inventaire rafraîchie (la représentation
	// backend exige que le parent répète ses enfants à chaque mise à jour).
	colors, err := uc.colorRepo.ListByItem(item.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range colors {
		if c.StockItemID != item.ID {
			return nil, domain.ErrConflict
		}
	}
	item.DateDernierInventaire = &now
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	return uc.toResponse(item)
}

// ResetStockItem corrige manuellement l'inventaire d'un article sans
// couleurs : tout l'historique de mouvements est supprimé puis le stock est
// posé (stockInitial = stockRestant = newValue, compteurs à zéro).
// L'historique s'effondre; aucune écriture de correction n'est ajoutée.
func (uc *UseCase) ResetStockItem(ctx context.Context, itemID string, in dto.ResetInventoryRequest) (*dto.StockItemResponse, error) {
	if in.NewValue < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.HasColors {
		// Un article coloré se corrige couleur par couleur.
		return nil, domain.ErrInvalidInput
	}

	if err := uc.movRepo.DeleteByItem(item.ID); err != nil {
		return nil, err
	}

	now := time.Now()
	restant := in.NewValue
	item.StockInitial = in.NewValue
	item.StockRestant = &restant
	item.NbEntrees = 0
	item.NbSorties = 0
	item.DateDernierInventaire = &now
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}
