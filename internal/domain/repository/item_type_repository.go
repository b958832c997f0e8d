package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// ItemTypeRepository définit le port de persistance pour ItemType (DIP).
type ItemTypeRepository interface {
	Create(t *entity.ItemType) error
	GetByID(id string) (*entity.ItemType, error)
	GetByName(name string) (*entity.ItemType, error)
	Update(t *entity.ItemType) error
	List() ([]*entity.ItemType, error)
	Delete(id string) error
}
