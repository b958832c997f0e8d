package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// RegisterMovement enregistre une entrée ou une sortie, sur un article ou sur
// une couleur, de façon transactionnelle : verrou de ligne (SELECT FOR
// UPDATE), mise à jour du stock restant et des compteurs, insertion de
// l'enregistrement immuable, puis Commit ou Rollback.
//
// Le flux « nouvelle couleur » (NewColor renseigné sur une entrée) crée
// d'abord le ColorStock, hors transaction, puis enregistre le mouvement.
// En cas d'échec du mouvement la couleur créée reste.
func (uc *UseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) || in.Quantity <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	// Cible couleur explicite.
	if !in.ColorStock.IsZero() {
		return uc.registerColorMovement(ctx, in.ColorStock.ID, in)
	}

	if in.StockItem.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.StockItem.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	// Flux « nouvelle couleur » pendant une entrée.
	if in.NewColor != "" {
		if in.Type != entity.MovementTypeEntree || !item.HasColors {
			return nil, domain.ErrInvalidInput
		}
		cs, err := uc.AddColor(ctx, dto.CreateColorStockRequest{
			StockItem: dto.Ref{ID: item.ID},
			Color:     in.NewColor,
		})
		if err != nil {
			return nil, err
		}
		return uc.registerColorMovement(ctx, cs.ID, in)
	}

	if item.HasColors {
		// Les quantités d'un article coloré vivent dans ses couleurs.
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		StockItemID: item.ID,
		Date:        in.Date,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		_ repository.ColorStockRepository,
		movRepo repository.StockMovementRepository,
		_ repository.ColorStockMovementRepository,
	) error {
		locked, err := itemRepo.GetByIDForUpdate(item.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		current := locked.StockInitial
		if locked.StockRestant != nil {
			current = *locked.StockRestant
		}
		switch in.Type {
		case entity.MovementTypeEntree:
			current += in.Quantity
			locked.NbEntrees++
		case entity.MovementTypeSortie:
			if current < in.Quantity {
				return domain.ErrStockInsuffisant
			}
			current -= in.Quantity
			locked.NbSorties++
		}
		locked.StockRestant = &current
		locked.UpdatedAt = now
		if err := itemRepo.Update(locked); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovementResponse{
		ID:        mov.ID,
		StockItem: "/api/stock_items/" + mov.StockItemID,
		Date:      mov.Date,
		Type:      mov.Type,
		Quantity:  mov.Quantity,
		Notes:     mov.Notes,
		CreatedAt: mov.CreatedAt,
	}, nil
}

// registerColorMovement entrée/sortie sur un sous-stock couleur, même
// discipline transactionnelle que pour un article.
func (uc *UseCase) registerColorMovement(ctx context.Context, colorStockID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	cs, err := uc.colorRepo.GetByID(colorStockID)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.ColorStockMovement{
		ID:           uuid.New().String(),
		ColorStockID: cs.ID,
		Date:         in.Date,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Notes:        in.Notes,
		CreatedAt:    now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.StockItemRepository,
		colorRepo repository.ColorStockRepository,
		_ repository.StockMovementRepository,
		colorMovRepo repository.ColorStockMovementRepository,
	) error {
		locked, err := colorRepo.GetByIDForUpdate(cs.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		switch in.Type {
		case entity.MovementTypeEntree:
			locked.StockRestant += in.Quantity
			locked.NbEntrees++
		case entity.MovementTypeSortie:
			if locked.StockRestant < in.Quantity {
				return domain.ErrStockInsuffisant
			}
			locked.StockRestant -= in.Quantity
			locked.NbSorties++
		}
		locked.UpdatedAt = now
		if err := colorRepo.Update(locked); err != nil {
			return err
		}
		return colorMovRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovementResponse{
		ID:         mov.ID,
		ColorStock: "/api/color_stocks/" + mov.ColorStockID,
		Date:       mov.Date,
		Type:       mov.Type,
		Quantity:   mov.Quantity,
		Notes:      mov.Notes,
		CreatedAt:  mov.CreatedAt,
	}, nil
}
