package stock_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/stock"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositories en mémoire pour tester le moteur de stock sans PostgreSQL.
// Les Get renvoient des copies, comme une vraie lecture en base.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]entity.StockItem
	order []string
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]entity.StockItem{}}
}

func (r *fakeItemRepo) Create(item *entity.StockItem) error {
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := r.items[id]; ok {
		c := it
		return &c, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) GetByReference(reference string) (*entity.StockItem, error) {
	for _, it := range r.items {
		if it.Reference == reference {
			c := it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.StockItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.order))
	for _, id := range r.order {
		if it, ok := r.items[id]; ok {
			c := it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeColorRepo struct {
	colors map[string]entity.ColorStock
	order  []string
	// Delete cascade les mouvements de la couleur, comme la FK en base.
	colorMovs *fakeColorMovRepo
}

func newFakeColorRepo(colorMovs *fakeColorMovRepo) *fakeColorRepo {
	return &fakeColorRepo{colors: map[string]entity.ColorStock{}, colorMovs: colorMovs}
}

func (r *fakeColorRepo) Create(cs *entity.ColorStock) error {
	r.colors[cs.ID] = *cs
	r.order = append(r.order, cs.ID)
	return nil
}

func (r *fakeColorRepo) GetByID(id string) (*entity.ColorStock, error) {
	if cs, ok := r.colors[id]; ok {
		c := cs
		return &c, nil
	}
	return nil, nil
}

func (r *fakeColorRepo) GetByIDForUpdate(id string) (*entity.ColorStock, error) {
	return r.GetByID(id)
}

func (r *fakeColorRepo) GetByItemAndColor(stockItemID, color string) (*entity.ColorStock, error) {
	for _, cs := range r.colors {
		if cs.StockItemID == stockItemID && cs.Color == color {
			c := cs
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeColorRepo) ListByItem(stockItemID string) ([]*entity.ColorStock, error) {
	var out []*entity.ColorStock
	for _, id := range r.order {
		if cs, ok := r.colors[id]; ok && cs.StockItemID == stockItemID {
			c := cs
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeColorRepo) Update(cs *entity.ColorStock) error {
	r.colors[cs.ID] = *cs
	return nil
}

func (r *fakeColorRepo) Delete(id string) error {
	delete(r.colors, id)
	if r.colorMovs != nil {
		_ = r.colorMovs.DeleteByColorStock(id)
	}
	return nil
}

type fakeMovRepo struct {
	movs []entity.StockMovement
}

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	r.movs = append(r.movs, *m)
	return nil
}

func (r *fakeMovRepo) List() ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.movs))
	for i := range r.movs {
		c := r.movs[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeMovRepo) ListByItem(stockItemID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.movs {
		if r.movs[i].StockItemID == stockItemID {
			c := r.movs[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) DeleteByItem(stockItemID string) error {
	kept := r.movs[:0]
	for _, m := range r.movs {
		if m.StockItemID != stockItemID {
			kept = append(kept, m)
		}
	}
	r.movs = kept
	return nil
}

type fakeColorMovRepo struct {
	movs []entity.ColorStockMovement
}

func (r *fakeColorMovRepo) Create(m *entity.ColorStockMovement) error {
	r.movs = append(r.movs, *m)
	return nil
}

func (r *fakeColorMovRepo) List() ([]*entity.ColorStockMovement, error) {
	out := make([]*entity.ColorStockMovement, 0, len(r.movs))
	for i := range r.movs {
		c := r.movs[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeColorMovRepo) ListByColorStock(colorStockID string) ([]*entity.ColorStockMovement, error) {
	var out []*entity.ColorStockMovement
	for i := range r.movs {
		if r.movs[i].ColorStockID == colorStockID {
			c := r.movs[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeColorMovRepo) DeleteByColorStock(colorStockID string) error {
	kept := r.movs[:0]
	for _, m := range r.movs {
		if m.ColorStockID != colorStockID {
			kept = append(kept, m)
		}
	}
	r.movs = kept
	return nil
}

type fakeTypeRepo struct {
	types map[string]entity.ItemType
}

func (r *fakeTypeRepo) Create(t *entity.ItemType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *fakeTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	if t, ok := r.types[id]; ok {
		c := t
		return &c, nil
	}
	return nil, nil
}

func (r *fakeTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	for _, t := range r.types {
		if t.Name == name {
			c := t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTypeRepo) Update(t *entity.ItemType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *fakeTypeRepo) List() ([]*entity.ItemType, error) {
	out := make([]*entity.ItemType, 0, len(r.types))
	for _, t := range r.types {
		c := t
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeTypeRepo) Delete(id string) error {
	delete(r.types, id)
	return nil
}

// fakeTxRunner exécute la fonction directement, sans transaction réelle; les
// tests vérifient le comportement du moteur, pas l'isolation SQL.
type fakeTxRunner struct {
	items     *fakeItemRepo
	colors    *fakeColorRepo
	movs      *fakeMovRepo
	colorMovs *fakeColorMovRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.StockItemRepository,
	repository.ColorStockRepository,
	repository.StockMovementRepository,
	repository.ColorStockMovementRepository,
) error) error {
	return fn(r.items, r.colors, r.movs, r.colorMovs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	items     *fakeItemRepo
	colors    *fakeColorRepo
	movs      *fakeMovRepo
	colorMovs *fakeColorMovRepo
	types     *fakeTypeRepo
	uc        *stock.UseCase
	typeID    string
}

func newFixture() *fixture {
	colorMovs := &fakeColorMovRepo{}
	f := &fixture{
		items:     newFakeItemRepo(),
		colors:    newFakeColorRepo(colorMovs),
		movs:      &fakeMovRepo{},
		colorMovs: colorMovs,
		types:     &fakeTypeRepo{types: map[string]entity.ItemType{}},
		typeID:    uuid.New().String(),
	}
	f.types.types[f.typeID] = entity.ItemType{ID: f.typeID, Name: "fourniture"}
	runner := &fakeTxRunner{items: f.items, colors: f.colors, movs: f.movs, colorMovs: colorMovs}
	f.uc = stock.NewUseCase(f.items, f.colors, f.movs, colorMovs, f.types, runner)
	return f
}

// seedItem insère un article simple directement dans le repo.
func (f *fixture) seedItem(initial int, restant *int) *entity.StockItem {
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Reference:    "REF-" + uuid.New().String()[:8],
		Name:         "Article test",
		TypeID:       f.typeID,
		Location:     entity.LocationCotona,
		Unit:         entity.UnitPiece,
		StockInitial: initial,
		StockRestant: restant,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	_ = f.items.Create(item)
	return item
}

// seedColoredItem insère un article à couleurs avec ses sous-stocks.
func (f *fixture) seedColoredItem(colors map[string]int) (*entity.StockItem, map[string]string) {
	item := &entity.StockItem{
		ID:        uuid.New().String(),
		Reference: "REF-" + uuid.New().String()[:8],
		Name:      "Article coloré",
		TypeID:    f.typeID,
		Location:  entity.LocationMaison,
		Unit:      entity.UnitCarton,
		HasColors: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = f.items.Create(item)
	ids := make(map[string]string, len(colors))
	for color, qty := range colors {
		cs := &entity.ColorStock{
			ID:           uuid.New().String(),
			StockItemID:  item.ID,
			Color:        color,
			StockInitial: qty,
			StockRestant: qty,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		_ = f.colors.Create(cs)
		ids[color] = cs.ID
	}
	return item, ids
}
