package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// StockMovementRepository définit le port de persistance pour les mouvements
// d'articles (DIP). DeleteByItem sert à l'inventaire manuel qui efface
// l'historique au lieu d'ajouter une correction.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
	ListByItem(stockItemID string) ([]*entity.StockMovement, error)
	DeleteByItem(stockItemID string) error
}

// ColorStockMovementRepository définit le port de persistance pour les
// mouvements de couleurs (DIP).
type ColorStockMovementRepository interface {
	Create(m *entity.ColorStockMovement) error
	List() ([]*entity.ColorStockMovement, error)
	ListByColorStock(colorStockID string) ([]*entity.ColorStockMovement, error)
	DeleteByColorStock(colorStockID string) error
}
