package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implémentation de StockItemRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, reference, name, type_id, location, unit, stock_initial, stock_restant,
	nb_entrees, nb_sorties, has_colors, date_dernier_inventaire, created_at, updated_at`

// Create persiste un nouvel article.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Reference, item.Name, item.TypeID, item.Location, item.Unit,
		item.StockInitial, item.StockRestant, item.NbEntrees, item.NbSorties,
		item.HasColors, item.DateDernierInventaire, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtient un article par ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id)
}

// GetByIDForUpdate obtient un article et verrouille la ligne (SELECT FOR
// UPDATE) pour le moteur de mouvements.
func (r *StockItemRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1 FOR UPDATE`, id)
}

// GetByReference obtient un article par référence.
func (r *StockItemRepo) GetByReference(reference string) (*entity.StockItem, error) {
	return r.getOne(`SELECT `+stockItemColumns+` FROM stock_items WHERE reference = $1`, reference)
}

func (r *StockItemRepo) getOne(query string, arg any) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&item.ID, &item.Reference, &item.Name, &item.TypeID, &item.Location, &item.Unit,
		&item.StockInitial, &item.StockRestant, &item.NbEntrees, &item.NbSorties,
		&item.HasColors, &item.DateDernierInventaire, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

// Update remplace un article existant.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET reference = $2, name = $3, type_id = $4, location = $5, unit = $6,
		    stock_initial = $7, stock_restant = $8, nb_entrees = $9, nb_sorties = $10,
		    has_colors = $11, date_dernier_inventaire = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Reference, item.Name, item.TypeID, item.Location, item.Unit,
		item.StockInitial, item.StockRestant, item.NbEntrees, item.NbSorties,
		item.HasColors, item.DateDernierInventaire, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// List renvoie tous les articles (le pipeline de liste opère en mémoire).
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(&item.ID, &item.Reference, &item.Name, &item.TypeID, &item.Location, &item.Unit,
			&item.StockInitial, &item.StockRestant, &item.NbEntrees, &item.NbSorties,
			&item.HasColors, &item.DateDernierInventaire, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Delete supprime un article (ses couleurs et mouvements suivent par FK ON
// DELETE CASCADE).
func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}
