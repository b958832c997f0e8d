package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction représente une opération comptable avec un fournisseur :
// un achat (dette) et/ou un virement (paiement), à une date donnée.
// Reste est un instantané pris à la création; il n'est jamais fiable pour
// l'affichage cumulé, le solde courant se recalcule via le ledger.
type Transaction struct {
	ID            string
	FournisseurID string
	Date          time.Time
	Achat         decimal.Decimal // montant acheté, >= 0
	Virement      decimal.Decimal // montant payé, >= 0
	Reste         decimal.Decimal // instantané à la création, dérivé
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
