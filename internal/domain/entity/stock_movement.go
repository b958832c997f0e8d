package entity

import "time"

// Types de mouvement de stock.
const (
	MovementTypeEntree = "entree" // entrée
	MovementTypeSortie = "sortie" // sortie
)

// ValidMovementType vérifie le type de mouvement.
func ValidMovementType(s string) bool {
	return s == MovementTypeEntree || s == MovementTypeSortie
}

// StockMovement est l'enregistrement immuable d'une entrée ou sortie sur un
// article. L'historique ne se corrige pas : un inventaire manuel supprime les
// mouvements antérieurs au lieu d'ajouter une écriture de correction.
type StockMovement struct {
	ID          string
	StockItemID string
	Date        time.Time
	Type        string // entree | sortie
	Quantity    int    // > 0
	Notes       string
	CreatedAt   time.Time
}

// ColorStockMovement a la même forme qu'un StockMovement mais cible un
// ColorStock au lieu de l'article parent.
type ColorStockMovement struct {
	ID           string
	ColorStockID string
	Date         time.Time
	Type         string
	Quantity     int
	Notes        string
	CreatedAt    time.Time
}
