package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrixRequest entrée pour créer ou remplacer une fiche de prix.
// Les montants renseignés dépendent du type : fourniture -> prixCarton et
// prixDetail; appareil -> prixAchat et prixVente.
type PrixRequest struct {
	Type       string           `json:"type" validate:"required,oneof=fourniture appareil"`
	NomArticle string           `json:"nomArticle" validate:"required"`
	Reference  string           `json:"reference"`
	PrixCarton *decimal.Decimal `json:"prixCarton,omitempty"`
	PrixDetail *decimal.Decimal `json:"prixDetail,omitempty"`
	PrixAchat  *decimal.Decimal `json:"prixAchat,omitempty"`
	PrixVente  *decimal.Decimal `json:"prixVente,omitempty"`
}

// PrixResponse sortie d'une fiche de prix.
type PrixResponse struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	NomArticle string           `json:"nomArticle"`
	Reference  string           `json:"reference,omitempty"`
	PrixCarton *decimal.Decimal `json:"prixCarton,omitempty"`
	PrixDetail *decimal.Decimal `json:"prixDetail,omitempty"`
	PrixAchat  *decimal.Decimal `json:"prixAchat,omitempty"`
	PrixVente  *decimal.Decimal `json:"prixVente,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
