package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
	domstock "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/stock"
)

// UseCase articles de stock et sous-stocks couleur : CRUD, moteur de
// mouvements et inventaires manuels.
// Invariant : un article à couleurs garde ses propres quantités à 0, les
// quantités autoritaires vivent dans ses ColorStock; un article sans couleurs
// n'a aucun ColorStock.
type UseCase struct {
	itemRepo     repository.StockItemRepository
	colorRepo    repository.ColorStockRepository
	movRepo      repository.StockMovementRepository
	colorMovRepo repository.ColorStockMovementRepository
	typeRepo     repository.ItemTypeRepository
	txRunner     TxRunner
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	itemRepo repository.StockItemRepository,
	colorRepo repository.ColorStockRepository,
	movRepo repository.StockMovementRepository,
	colorMovRepo repository.ColorStockMovementRepository,
	typeRepo repository.ItemTypeRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		colorRepo:    colorRepo,
		movRepo:      movRepo,
		colorMovRepo: colorMovRepo,
		typeRepo:     typeRepo,
		txRunner:     txRunner,
	}
}

// Create crée un article, puis ses couleurs une par une, séquentiellement
// (pas de parallélisation ni de batch). En cas d'échec en cours de route les
// couleurs déjà créées restent : pas de rollback compensatoire, l'erreur
// remonte telle quelle.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Reference == "" || in.Name == "" || in.Type.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLocation(in.Location) || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockInitial < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.HasColors && len(in.ColorStocks) > 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.HasColors && len(in.ColorStocks) == 0 {
		return nil, domain.ErrInvalidInput
	}
	itemType, err := uc.typeRepo.GetByID(in.Type.ID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Reference:    in.Reference,
		Name:         in.Name,
		TypeID:       itemType.ID,
		Location:     in.Location,
		Unit:         in.Unit,
		StockInitial: in.StockInitial,
		HasColors:    in.HasColors,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if item.HasColors {
		item.StockInitial = 0
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}

	// Création séquentielle des couleurs, une requête à la fois.
	for _, c := range in.ColorStocks {
		if c.Color == "" || c.StockInitial < 0 {
			return nil, domain.ErrInvalidInput
		}
		cs := &entity.ColorStock{
			ID:           uuid.New().String(),
			StockItemID:  item.ID,
			Color:        c.Color,
			StockInitial: c.StockInitial,
			StockRestant: c.StockInitial,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.colorRepo.Create(cs); err != nil {
			return nil, err
		}
	}
	return uc.toResponse(item)
}

// GetByID renvoie un article avec ses couleurs.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// Update remplace un article (PUT complet). La liste ColorStocks restate les
// références couleur du parent : toute couleur existante absente de la liste
// est supprimée (cascade sur ses mouvements), comportement du formulaire
// d'édition.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Reference == "" || in.Name == "" || in.Type.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLocation(in.Location) || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	itemType, err := uc.typeRepo.GetByID(in.Type.ID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, domain.ErrNotFound
	}
	if !in.HasColors && len(in.ColorStocks) > 0 {
		return nil, domain.ErrInvalidInput
	}

	hadColors := item.HasColors

	item.Reference = in.Reference
	item.Name = in.Name
	item.TypeID = itemType.ID
	item.Location = in.Location
	item.Unit = in.Unit
	item.HasColors = in.HasColors
	if in.DateDernierInventaire != nil {
		item.DateDernierInventaire = in.DateDernierInventaire
	}
	if item.HasColors {
		// Les quantités du parent restent à 0 sur toute écriture.
		item.StockInitial = 0
		zero := 0
		item.StockRestant = &zero
	} else {
		item.StockInitial = in.StockInitial
		if hadColors {
			// Redevenu simple : le restant repart de l'initial.
			item.StockRestant = nil
		}
	}
	item.UpdatedAt = time.Now()

	// Réconciliation des couleurs. Passer hasColors à faux restate une liste
	// vide : les couleurs existantes et leurs mouvements sont supprimés, pas
	// laissés orphelins.
	if item.HasColors || hadColors {
		kept := make(map[string]bool, len(in.ColorStocks))
		for _, ref := range in.ColorStocks {
			cs, err := uc.colorRepo.GetByID(ref.ID)
			if err != nil {
				return nil, err
			}
			if cs == nil || cs.StockItemID != item.ID {
				return nil, domain.ErrInvalidInput
			}
			kept[ref.ID] = true
		}
		existing, err := uc.colorRepo.ListByItem(item.ID)
		if err != nil {
			return nil, err
		}
		for _, cs := range existing {
			if !kept[cs.ID] {
				if err := uc.colorRepo.Delete(cs.ID); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// List renvoie tous les articles avec leurs couleurs.
func (uc *UseCase) List(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		resp, err := uc.toResponse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete supprime un article (ses couleurs et mouvements suivent en cascade).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// AddColor ajoute une couleur à un article existant (formulaire d'édition ou
// flux « nouvelle couleur » pendant une entrée). Couleur dupliquée sur le
// même article -> ErrDuplicate.
func (uc *UseCase) AddColor(ctx context.Context, in dto.CreateColorStockRequest) (*dto.ColorStockResponse, error) {
	if in.StockItem.IsZero() || in.Color == "" || in.StockInitial < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.StockItem.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !item.HasColors {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.colorRepo.GetByItemAndColor(item.ID, in.Color)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cs := &entity.ColorStock{
		ID:           uuid.New().String(),
		StockItemID:  item.ID,
		Color:        in.Color,
		StockInitial: in.StockInitial,
		StockRestant: in.StockInitial,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.colorRepo.Create(cs); err != nil {
		return nil, err
	}
	return toColorStockResponse(cs), nil
}

// UpdateColor remplace un sous-stock couleur (renommage, stock initial).
func (uc *UseCase) UpdateColor(ctx context.Context, id string, in dto.UpdateColorStockRequest) (*dto.ColorStockResponse, error) {
	if in.Color == "" || in.StockInitial < 0 {
		return nil, domain.ErrInvalidInput
	}
	cs, err := uc.colorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, nil
	}
	other, err := uc.colorRepo.GetByItemAndColor(cs.StockItemID, in.Color)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	delta := in.StockInitial - cs.StockInitial
	cs.Color = in.Color
	cs.StockInitial = in.StockInitial
	cs.StockRestant += delta
	cs.UpdatedAt = time.Now()
	if err := uc.colorRepo.Update(cs); err != nil {
		return nil, err
	}
	return toColorStockResponse(cs), nil
}

// DeleteColor supprime une couleur et, en cascade, ses mouvements.
func (uc *UseCase) DeleteColor(ctx context.Context, id string) error {
	cs, err := uc.colorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cs == nil {
		return domain.ErrNotFound
	}
	return uc.colorRepo.Delete(id)
}

// ListItemMovements renvoie les mouvements d'articles.
func (uc *UseCase) ListItemMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movs, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			StockItem: "/api/stock_items/" + m.StockItemID,
			Date:      m.Date,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Notes:     m.Notes,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// ListColorMovements renvoie les mouvements de couleurs.
func (uc *UseCase) ListColorMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movs, err := uc.colorMovRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:         m.ID,
			ColorStock: "/api/color_stocks/" + m.ColorStockID,
			Date:       m.Date,
			Type:       m.Type,
			Quantity:   m.Quantity,
			Notes:      m.Notes,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}

// toResponse assemble la réponse d'un article, couleurs incluses pour un
// article coloré, niveau de stock calculé pour un article simple.
func (uc *UseCase) toResponse(item *entity.StockItem) (*dto.StockItemResponse, error) {
	resp := &dto.StockItemResponse{
		ID:        item.ID,
		Reference: item.Reference,
		Name:      item.Name,
		Type: dto.Ref{
			ID:  item.TypeID,
			IRI: "/api/item_types/" + item.TypeID,
		},
		Location:              item.Location,
		Unit:                  item.Unit,
		StockInitial:          item.StockInitial,
		StockRestant:          item.StockRestant,
		NbEntrees:             item.NbEntrees,
		NbSorties:             item.NbSorties,
		HasColors:             item.HasColors,
		DateDernierInventaire: item.DateDernierInventaire,
		CreatedAt:             item.CreatedAt,
		UpdatedAt:             item.UpdatedAt,
	}
	if t, err := uc.typeRepo.GetByID(item.TypeID); err == nil && t != nil {
		resp.Type.Name = t.Name
	}
	if item.HasColors {
		colors, err := uc.colorRepo.ListByItem(item.ID)
		if err != nil {
			return nil, err
		}
		resp.ColorStocks = make([]dto.ColorStockResponse, 0, len(colors))
		for _, cs := range colors {
			resp.ColorStocks = append(resp.ColorStocks, *toColorStockResponse(cs))
		}
	} else if n, ok := domstock.CurrentStock(item); ok {
		resp.Niveau = domstock.Classify(n)
	}
	return resp, nil
}

func toColorStockResponse(cs *entity.ColorStock) *dto.ColorStockResponse {
	return &dto.ColorStockResponse{
		ID:           cs.ID,
		StockItem:    "/api/stock_items/" + cs.StockItemID,
		Color:        cs.Color,
		StockInitial: cs.StockInitial,
		StockRestant: cs.StockRestant,
		NbEntrees:    cs.NbEntrees,
		NbSorties:    cs.NbSorties,
	}
}
