package dto

import "time"

// ItemTypeRequest entrée pour créer ou remplacer un type d'article.
type ItemTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ItemTypeResponse sortie d'un type d'article.
type ItemTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
