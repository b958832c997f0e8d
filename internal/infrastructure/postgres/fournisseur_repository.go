package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ repository.FournisseurRepository = (*FournisseurRepo)(nil)

// FournisseurRepo implémentation du port FournisseurRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type FournisseurRepo struct {
	q Querier
}

// NewFournisseurRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewFournisseurRepository(q Querier) *FournisseurRepo {
	return &FournisseurRepo{q: q}
}

// Create persiste un nouveau fournisseur.
func (r *FournisseurRepo) Create(f *entity.Fournisseur) error {
	query := `
		INSERT INTO fournisseurs (id, code, nom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Code, f.Nom, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID obtient un fournisseur par ID.
func (r *FournisseurRepo) GetByID(id string) (*entity.Fournisseur, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCode obtient un fournisseur par code unique.
func (r *FournisseurRepo) GetByCode(code string) (*entity.Fournisseur, error) {
	return r.getBy(`code = $1`, code)
}

func (r *FournisseurRepo) getBy(where string, arg any) (*entity.Fournisseur, error) {
	query := `
		SELECT id, code, nom, created_at, updated_at
		FROM fournisseurs WHERE ` + where
	var f entity.Fournisseur
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&f.ID, &f.Code, &f.Nom, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return &f, nil
}

// Update remplace un fournisseur existant.
func (r *FournisseurRepo) Update(f *entity.Fournisseur) error {
	query := `
		UPDATE fournisseurs SET code = $2, nom = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, f.ID, f.Code, f.Nom, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fournisseur: %w", err)
	}
	return nil
}

// List renvoie tous les fournisseurs (le pipeline de liste opère en mémoire).
func (r *FournisseurRepo) List() ([]*entity.Fournisseur, error) {
	query := `
		SELECT id, code, nom, created_at, updated_at
		FROM fournisseurs ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fournisseur
	for rows.Next() {
		var f entity.Fournisseur
		if err := rows.Scan(&f.ID, &f.Code, &f.Nom, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete supprime un fournisseur par ID.
func (r *FournisseurRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}
