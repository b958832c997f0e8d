package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// UserRepository définit le port de persistance pour User (DIP).
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
