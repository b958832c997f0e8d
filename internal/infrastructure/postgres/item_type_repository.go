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

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

// ItemTypeRepo implémentation de ItemTypeRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// Create persiste un nouveau type d'article.
func (r *ItemTypeRepo) Create(t *entity.ItemType) error {
	query := `
		INSERT INTO item_types (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Description, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item type: %w", err)
	}
	return nil
}

// GetByID obtient un type par ID.
func (r *ItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	return r.getBy(`id = $1`, id)
}

// GetByName obtient un type par nom unique.
func (r *ItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	return r.getBy(`name = $1`, name)
}

func (r *ItemTypeRepo) getBy(where string, arg any) (*entity.ItemType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM item_types WHERE ` + where
	var t entity.ItemType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return &t, nil
}

// Update remplace un type existant.
func (r *ItemTypeRepo) Update(t *entity.ItemType) error {
	query := `
		UPDATE item_types SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.Description, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item type: %w", err)
	}
	return nil
}

// List renvoie tous les types.
func (r *ItemTypeRepo) List() ([]*entity.ItemType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM item_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemType
	for rows.Next() {
		var t entity.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete supprime un type par ID.
func (r *ItemTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item type: %w", err)
	}
	return nil
}
