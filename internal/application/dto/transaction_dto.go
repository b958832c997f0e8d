package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest entrée pour créer ou remplacer une transaction.
// Fournisseur accepte une IRI ("/api/fournisseurs/{id}") ou l'objet étendu.
type TransactionRequest struct {
	Date        time.Time       `json:"date" validate:"required"`
	Fournisseur Ref             `json:"fournisseur" validate:"required"`
	Achat       decimal.Decimal `json:"achat"`
	Virement    decimal.Decimal `json:"virement"`
	Description string          `json:"description"`
}

// TransactionFournisseur vue dénormalisée du fournisseur dans une transaction.
type TransactionFournisseur struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Nom  string `json:"nom"`
}

// TransactionResponse sortie d'une transaction. Reste est le solde cumulé du
// fournisseur à cette transaction incluse, recalculé à la lecture.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	Date        time.Time              `json:"date"`
	Fournisseur TransactionFournisseur `json:"fournisseur"`
	Achat       decimal.Decimal        `json:"achat"`
	Virement    decimal.Decimal        `json:"virement"`
	Reste       decimal.Decimal        `json:"reste"`
	Description string                 `json:"description,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}
