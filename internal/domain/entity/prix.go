package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catégories de prix.
const (
	PrixTypeFourniture = "fourniture"
	PrixTypeAppareil   = "appareil"
)

// ValidPrixType vérifie la catégorie d'un prix.
func ValidPrixType(s string) bool {
	return s == PrixTypeFourniture || s == PrixTypeAppareil
}

// Prix est une fiche de prix indépendante du stock (pur CRUD).
// Les champs de montant renseignés dépendent de la catégorie :
// une fourniture porte un prix carton et un prix détail, un appareil un prix
// d'achat et un prix de vente. Les champs non pertinents restent nil.
type Prix struct {
	ID         string
	Type       string // fourniture | appareil
	NomArticle string
	Reference  string
	PrixCarton *decimal.Decimal
	PrixDetail *decimal.Decimal
	PrixAchat  *decimal.Decimal
	PrixVente  *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
