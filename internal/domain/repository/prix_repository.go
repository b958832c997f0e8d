package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// PrixRepository définit le port de persistance pour Prix (DIP).
type PrixRepository interface {
	Create(p *entity.Prix) error
	GetByID(id string) (*entity.Prix, error)
	Update(p *entity.Prix) error
	List() ([]*entity.Prix, error)
	Delete(id string) error
}
