package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// FournisseurRepository définit le port de persistance pour Fournisseur (DIP).
// List renvoie la collection complète : le filtrage, le tri et la pagination
// se font en mémoire dans la couche application.
type FournisseurRepository interface {
	Create(f *entity.Fournisseur) error
	GetByID(id string) (*entity.Fournisseur, error)
	GetByCode(code string) (*entity.Fournisseur, error)
	Update(f *entity.Fournisseur) error
	List() ([]*entity.Fournisseur, error)
	Delete(id string) error
}
