package entity

import "time"

// Fournisseur représente un fournisseur de l'entreprise.
// Code est unique; les transactions associées vivent dans la collection
// Transaction (la liste embarquée dans les réponses est une vue dénormalisée).
type Fournisseur struct {
	ID        string
	Code      string // code unique fournisseur
	Nom       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
