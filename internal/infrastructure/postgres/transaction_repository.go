package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implémentation de TransactionRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, fournisseur_id, date, achat, virement, reste, description, created_at, updated_at`

// Create persiste une nouvelle transaction.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.FournisseurID, t.Date, t.Achat, t.Virement, t.Reste, t.Description,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtient une transaction par ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.FournisseurID, &t.Date, &t.Achat, &t.Virement, &t.Reste,
		&t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update remplace une transaction existante.
func (r *TransactionRepo) Update(t *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET fournisseur_id = $2, date = $3, achat = $4, virement = $5, reste = $6,
		    description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.FournisseurID, t.Date, t.Achat, t.Virement, t.Reste, t.Description, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// List renvoie toutes les transactions (le cumul se calcule en mémoire).
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	return r.list(`SELECT ` + transactionColumns + ` FROM transactions ORDER BY date, created_at`)
}

// ListByFournisseur renvoie les transactions d'un fournisseur.
func (r *TransactionRepo) ListByFournisseur(fournisseurID string) ([]*entity.Transaction, error) {
	return r.list(
		`SELECT `+transactionColumns+` FROM transactions WHERE fournisseur_id = $1 ORDER BY date, created_at`,
		fournisseurID,
	)
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.FournisseurID, &t.Date, &t.Achat, &t.Virement, &t.Reste,
			&t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete supprime une transaction par ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
