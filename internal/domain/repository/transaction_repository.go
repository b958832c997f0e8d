package repository

import "github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"

// TransactionRepository définit le port de persistance pour Transaction (DIP).
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(t *entity.Transaction) error
	List() ([]*entity.Transaction, error)
	ListByFournisseur(fournisseurID string) ([]*entity.Transaction, error)
	Delete(id string) error
}
