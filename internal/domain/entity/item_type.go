package entity

import "time"

// ItemType catégorise les articles de stock. Name est unique.
type ItemType struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
