package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FournisseurRequest entrée pour créer ou remplacer un fournisseur.
// Pas de PATCH : une mise à jour resoumet l'entité complète.
type FournisseurRequest struct {
	Code string `json:"code" validate:"required,min=1,max=50"`
	Nom  string `json:"nom" validate:"required,min=1,max=200"`
}

// FournisseurResponse sortie d'un fournisseur. Reste est le solde cumulé
// final recalculé par le ledger, jamais relu depuis le stockage.
type FournisseurResponse struct {
	ID             string                `json:"id"`
	Code           string                `json:"code"`
	Nom            string                `json:"nom"`
	TotalAchats    decimal.Decimal       `json:"totalAchats"`
	TotalVirements decimal.Decimal       `json:"totalVirements"`
	Reste          decimal.Decimal       `json:"reste"`
	Transactions   []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// SoldeResponse solde cumulé d'un fournisseur (vue liste et grand livre).
type SoldeResponse struct {
	FournisseurID  string          `json:"fournisseurId"`
	TotalAchats    decimal.Decimal `json:"totalAchats"`
	TotalVirements decimal.Decimal `json:"totalVirements"`
	Reste          decimal.Decimal `json:"reste"`
}
