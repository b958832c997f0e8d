package entity

import "time"

// ColorStock représente le sous-stock d'une couleur d'un article.
// Color est unique au sein du même article parent. Supprimer un ColorStock
// supprime en cascade ses mouvements.
type ColorStock struct {
	ID           string
	StockItemID  string
	Color        string
	StockInitial int
	StockRestant int // dérivé : initial + entrées − sorties
	NbEntrees    int
	NbSorties    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
