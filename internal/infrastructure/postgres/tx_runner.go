package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/stock"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repos liés à la tx et fait
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	colorRepo repository.ColorStockRepository,
	movRepo repository.StockMovementRepository,
	colorMovRepo repository.ColorStockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewStockItemRepository(tx)
	colorRepo := NewColorStockRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	colorMovRepo := NewColorStockMovementRepository(tx)

	if err := fn(itemRepo, colorRepo, movRepo, colorMovRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
