package entity

import "time"

// Emplacements de stockage autorisés.
const (
	LocationCotona  = "Cotona"
	LocationMaison  = "Maison"
	LocationAvishay = "Avishay"
	LocationAvenir  = "Avenir"
)

// Unités de comptage.
const (
	UnitPiece  = "piece"
	UnitCarton = "carton"
	UnitBal    = "bal"
)

// ValidLocation vérifie qu'un emplacement fait partie de la liste connue.
func ValidLocation(s string) bool {
	switch s {
	case LocationCotona, LocationMaison, LocationAvishay, LocationAvenir:
		return true
	}
	return false
}

// ValidUnit vérifie qu'une unité fait partie de la liste connue.
func ValidUnit(s string) bool {
	switch s {
	case UnitPiece, UnitCarton, UnitBal:
		return true
	}
	return false
}

// StockItem représente un article de stock.
// Si HasColors est vrai, les quantités du parent restent à 0 et les quantités
// autoritaires vivent dans ses ColorStock; sinon ColorStocks doit être vide.
// StockRestant est dérivé (initial + entrées − sorties); nil tant qu'aucun
// mouvement n'a été enregistré.
type StockItem struct {
	ID                    string
	Reference             string
	Name                  string
	TypeID                string // référence ItemType (IRI côté API)
	Location              string
	Unit                  string
	StockInitial          int
	StockRestant          *int
	NbEntrees             int
	NbSorties             int
	HasColors             bool
	DateDernierInventaire *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
