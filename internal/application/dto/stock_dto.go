package dto

import "time"

// ColorStockInput sous-stock couleur fourni à la création d'un article.
type ColorStockInput struct {
	Color        string `json:"color" validate:"required,min=1,max=100"`
	StockInitial int    `json:"stockInitial" validate:"min=0"`
}

// CreateStockItemRequest entrée pour créer un article de stock.
// Type accepte une IRI ("/api/item_types/{id}") ou l'objet étendu.
// Si HasColors est vrai, ColorStocks porte les quantités et les champs du
// parent sont forcés à 0.
type CreateStockItemRequest struct {
	Reference    string            `json:"reference" validate:"required"`
	Name         string            `json:"name" validate:"required"`
	Type         Ref               `json:"type" validate:"required"`
	Location     string            `json:"location" validate:"required"`
	Unit         string            `json:"unit" validate:"required"`
	StockInitial int               `json:"stockInitial" validate:"min=0"`
	HasColors    bool              `json:"hasColors"`
	ColorStocks  []ColorStockInput `json:"colorStocks,omitempty"`
}

// UpdateStockItemRequest entrée pour remplacer un article (PUT complet).
// ColorStocks restate la liste des références couleur du parent : la
// représentation backend exige que le parent répète ses enfants à chaque
// mise à jour.
type UpdateStockItemRequest struct {
	Reference             string     `json:"reference" validate:"required"`
	Name                  string     `json:"name" validate:"required"`
	Type                  Ref        `json:"type" validate:"required"`
	Location              string     `json:"location" validate:"required"`
	Unit                  string     `json:"unit" validate:"required"`
	StockInitial          int        `json:"stockInitial" validate:"min=0"`
	HasColors             bool       `json:"hasColors"`
	ColorStocks           []Ref      `json:"colorStocks,omitempty"`
	DateDernierInventaire *time.Time `json:"dateDernierInventaire,omitempty"`
}

// ColorStockResponse sortie d'un sous-stock couleur.
type ColorStockResponse struct {
	ID           string `json:"id"`
	StockItem    string `json:"stockItem"` // IRI du parent
	Color        string `json:"color"`
	StockInitial int    `json:"stockInitial"`
	StockRestant int    `json:"stockRestant"`
	NbEntrees    int    `json:"nbEntrees"`
	NbSorties    int    `json:"nbSorties"`
}

// StockItemResponse sortie d'un article. Niveau est la classification du
// stock courant (critique / bas / normal) pour un article non coloré.
type StockItemResponse struct {
	ID                    string               `json:"id"`
	Reference             string               `json:"reference"`
	Name                  string               `json:"name"`
	Type                  Ref                  `json:"type"`
	Location              string               `json:"location"`
	Unit                  string               `json:"unit"`
	StockInitial          int                  `json:"stockInitial"`
	StockRestant          *int                 `json:"stockRestant,omitempty"`
	NbEntrees             int                  `json:"nbEntrees"`
	NbSorties             int                  `json:"nbSorties"`
	HasColors             bool                 `json:"hasColors"`
	ColorStocks           []ColorStockResponse `json:"colorStocks,omitempty"`
	Niveau                string               `json:"niveau,omitempty"`
	DateDernierInventaire *time.Time           `json:"dateDernierInventaire,omitempty"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

// CreateColorStockRequest ajout d'une couleur à un article existant
// (formulaire d'édition ou flux « nouvelle couleur » pendant une entrée).
type CreateColorStockRequest struct {
	StockItem    Ref    `json:"stockItem" validate:"required"`
	Color        string `json:"color" validate:"required"`
	StockInitial int    `json:"stockInitial" validate:"min=0"`
}

// UpdateColorStockRequest remplacement d'un sous-stock couleur.
type UpdateColorStockRequest struct {
	Color        string `json:"color" validate:"required"`
	StockInitial int    `json:"stockInitial" validate:"min=0"`
}

// RegisterMovementRequest entrée ou sortie de stock. Cible soit un article
// (StockItem), soit une couleur (ColorStock). NewColor déclenche le flux
// « nouvelle couleur » : la couleur est créée sur l'article avant le
// mouvement.
type RegisterMovementRequest struct {
	StockItem  Ref       `json:"stockItem,omitempty"`
	ColorStock Ref       `json:"colorStock,omitempty"`
	NewColor   string    `json:"newColor,omitempty"`
	Date       time.Time `json:"date" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=entree sortie"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`
	Notes      string    `json:"notes"`
}

// MovementResponse sortie d'un mouvement (article ou couleur).
type MovementResponse struct {
	ID         string    `json:"id"`
	StockItem  string    `json:"stockItem,omitempty"`  // IRI
	ColorStock string    `json:"colorStock,omitempty"` // IRI
	Date       time.Time `json:"date"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ResetInventoryRequest correction manuelle d'inventaire : le stock est posé
// à NewValue et l'historique de mouvements est effacé.
type ResetInventoryRequest struct {
	NewValue int `json:"newValue" validate:"min=0"`
}
