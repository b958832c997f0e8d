package postgres

import (
	"context"
	"fmt"

	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implémentation de StockMovementRepository sur PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `id, stock_item_id, date, type, quantity, notes, created_at`

// Create persiste un mouvement (l'historique est immuable, pas d'Update).
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.StockItemID, m.Date, m.Type, m.Quantity, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List renvoie tous les mouvements d'articles, du plus récent au plus ancien.
func (r *StockMovementRepo) List() ([]*entity.StockMovement, error) {
	return r.list(`SELECT ` + stockMovementColumns + ` FROM stock_movements ORDER BY date DESC, created_at DESC`)
}

// ListByItem renvoie l'historique d'un article.
func (r *StockMovementRepo) ListByItem(stockItemID string) ([]*entity.StockMovement, error) {
	return r.list(
		`SELECT `+stockMovementColumns+` FROM stock_movements WHERE stock_item_id = $1 ORDER BY date DESC, created_at DESC`,
		stockItemID,
	)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StockItemID, &m.Date, &m.Type, &m.Quantity, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByItem efface l'historique d'un article (inventaire manuel).
func (r *StockMovementRepo) DeleteByItem(stockItemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE stock_item_id = $1`, stockItemID)
	if err != nil {
		return fmt.Errorf("delete stock movements: %w", err)
	}
	return nil
}

var _ repository.ColorStockMovementRepository = (*ColorStockMovementRepo)(nil)

// ColorStockMovementRepo implémentation de ColorStockMovementRepository sur
// PostgreSQL.
type ColorStockMovementRepo struct {
	q Querier
}

func NewColorStockMovementRepository(q Querier) *ColorStockMovementRepo {
	return &ColorStockMovementRepo{q: q}
}

const colorMovementColumns = `id, color_stock_id, date, type, quantity, notes, created_at`

func (r *ColorStockMovementRepo) Create(m *entity.ColorStockMovement) error {
	query := `
		INSERT INTO color_stock_movements (` + colorMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ColorStockID, m.Date, m.Type, m.Quantity, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert color stock movement: %w", err)
	}
	return nil
}

func (r *ColorStockMovementRepo) List() ([]*entity.ColorStockMovement, error) {
	return r.list(`SELECT ` + colorMovementColumns + ` FROM color_stock_movements ORDER BY date DESC, created_at DESC`)
}

func (r *ColorStockMovementRepo) ListByColorStock(colorStockID string) ([]*entity.ColorStockMovement, error) {
	return r.list(
		`SELECT `+colorMovementColumns+` FROM color_stock_movements WHERE color_stock_id = $1 ORDER BY date DESC, created_at DESC`,
		colorStockID,
	)
}

func (r *ColorStockMovementRepo) list(query string, args ...any) ([]*entity.ColorStockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list color stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ColorStockMovement
	for rows.Next() {
		var m entity.ColorStockMovement
		if err := rows.Scan(&m.ID, &m.ColorStockID, &m.Date, &m.Type, &m.Quantity, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan color stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByColorStock efface l'historique d'une seule couleur, les autres
// couleurs du même article gardent le leur.
func (r *ColorStockMovementRepo) DeleteByColorStock(colorStockID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM color_stock_movements WHERE color_stock_id = $1`, colorStockID)
	if err != nil {
		return fmt.Errorf("delete color stock movements: %w", err)
	}
	return nil
}
