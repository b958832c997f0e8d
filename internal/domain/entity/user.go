package entity

import "time"

// User représente un utilisateur de l'application (login par email).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
