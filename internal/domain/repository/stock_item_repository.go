package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// StockItemRepository définit le port de persistance pour StockItem (DIP).
// GetByIDForUpdate verrouille la ligne (SELECT FOR UPDATE) pour le moteur de
// mouvements; hors transaction il se comporte comme GetByID.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	GetByReference(reference string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	List() ([]*entity.StockItem, error)
	Delete(id string) error
}

// ColorStockRepository définit le port de persistance pour ColorStock (DIP).
// Delete supprime en cascade les mouvements de la couleur.
type ColorStockRepository interface {
	Create(cs *entity.ColorStock) error
	GetByID(id string) (*entity.ColorStock, error)
	GetByIDForUpdate(id string) (*entity.ColorStock, error)
	GetByItemAndColor(stockItemID, color string) (*entity.ColorStock, error)
	ListByItem(stockItemID string) ([]*entity.ColorStock, error)
	Update(cs *entity.ColorStock) error
	Delete(id string) error
}
