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

var _ repository.ColorStockRepository = (*ColorStockRepo)(nil)

// ColorStockRepo implémentation de ColorStockRepository sur PostgreSQL.
type ColorStockRepo struct {
	q Querier
}

func NewColorStockRepository(q Querier) *ColorStockRepo {
	return &ColorStockRepo{q: q}
}

const colorStockColumns = `id, stock_item_id, color, stock_initial, stock_restant,
	nb_entrees, nb_sorties, created_at, updated_at`

// Create persiste une couleur. La paire (article, couleur) est unique.
func (r *ColorStockRepo) Create(cs *entity.ColorStock) error {
	query := `
		INSERT INTO color_stocks (` + colorStockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cs.ID, cs.StockItemID, cs.Color, cs.StockInitial, cs.StockRestant,
		cs.NbEntrees, cs.NbSorties, cs.CreatedAt, cs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert color stock: %w", err)
	}
	return nil
}

func (r *ColorStockRepo) GetByID(id string) (*entity.ColorStock, error) {
	return r.getOne(`SELECT `+colorStockColumns+` FROM color_stocks WHERE id = $1`, id)
}

// GetByIDForUpdate obtient une couleur et verrouille la ligne (SELECT FOR
// UPDATE) pour le moteur de mouvements.
func (r *ColorStockRepo) GetByIDForUpdate(id string) (*entity.ColorStock, error) {
	return r.getOne(`SELECT `+colorStockColumns+` FROM color_stocks WHERE id = $1 FOR UPDATE`, id)
}

// GetByItemAndColor cherche une couleur précise d'un article.
func (r *ColorStockRepo) GetByItemAndColor(stockItemID, color string) (*entity.ColorStock, error) {
	return r.getOne(
		`SELECT `+colorStockColumns+` FROM color_stocks WHERE stock_item_id = $1 AND color = $2`,
		stockItemID, color,
	)
}

func (r *ColorStockRepo) getOne(query string, args ...any) (*entity.ColorStock, error) {
	var cs entity.ColorStock
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&cs.ID, &cs.StockItemID, &cs.Color, &cs.StockInitial, &cs.StockRestant,
		&cs.NbEntrees, &cs.NbSorties, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color stock: %w", err)
	}
	return &cs, nil
}

// ListByItem renvoie toutes les couleurs d'un article.
func (r *ColorStockRepo) ListByItem(stockItemID string) ([]*entity.ColorStock, error) {
	query := `SELECT ` + colorStockColumns + ` FROM color_stocks WHERE stock_item_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, stockItemID)
	if err != nil {
		return nil, fmt.Errorf("list color stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.ColorStock
	for rows.Next() {
		var cs entity.ColorStock
		if err := rows.Scan(&cs.ID, &cs.StockItemID, &cs.Color, &cs.StockInitial, &cs.StockRestant,
			&cs.NbEntrees, &cs.NbSorties, &cs.CreatedAt, &cs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan color stock: %w", err)
		}
		list = append(list, &cs)
	}
	return list, rows.Err()
}

func (r *ColorStockRepo) Update(cs *entity.ColorStock) error {
	query := `
		UPDATE color_stocks
		SET color = $2, stock_initial = $3, stock_restant = $4,
		    nb_entrees = $5, nb_sorties = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cs.ID, cs.Color, cs.StockInitial, cs.StockRestant,
		cs.NbEntrees, cs.NbSorties, cs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update color stock: %w", err)
	}
	return nil
}

// Delete supprime une couleur, ses mouvements suivent par FK ON DELETE CASCADE.
func (r *ColorStockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM color_stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete color stock: %w", err)
	}
	return nil
}
