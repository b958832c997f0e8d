package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

var _ repository.PrixRepository = (*PrixRepo)(nil)

// PrixRepo implémentation de PrixRepository sur PostgreSQL (utilisable avec
// pool ou tx).
type PrixRepo struct {
	q Querier
}

// NewPrixRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewPrixRepository(q Querier) *PrixRepo {
	return &PrixRepo{q: q}
}

const prixColumns = `id, type, nom_article, reference, prix_carton, prix_detail, prix_achat, prix_vente, created_at, updated_at`

// Create persiste une nouvelle fiche de prix.
func (r *PrixRepo) Create(p *entity.Prix) error {
	query := `
		INSERT INTO prix (` + prixColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Type, p.NomArticle, p.Reference,
		p.PrixCarton, p.PrixDetail, p.PrixAchat, p.PrixVente,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prix: %w", err)
	}
	return nil
}

// GetByID obtient une fiche par ID.
func (r *PrixRepo) GetByID(id string) (*entity.Prix, error) {
	query := `SELECT ` + prixColumns + ` FROM prix WHERE id = $1`
	var p entity.Prix
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Type, &p.NomArticle, &p.Reference,
		&p.PrixCarton, &p.PrixDetail, &p.PrixAchat, &p.PrixVente,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prix: %w", err)
	}
	return &p, nil
}

// Update remplace une fiche existante.
func (r *PrixRepo) Update(p *entity.Prix) error {
	query := `
		UPDATE prix
		SET type = $2, nom_article = $3, reference = $4, prix_carton = $5,
		    prix_detail = $6, prix_achat = $7, prix_vente = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Type, p.NomArticle, p.Reference,
		p.PrixCarton, p.PrixDetail, p.PrixAchat, p.PrixVente, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prix: %w", err)
	}
	return nil
}

// List renvoie toutes les fiches.
func (r *PrixRepo) List() ([]*entity.Prix, error) {
	query := `SELECT ` + prixColumns + ` FROM prix ORDER BY nom_article`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list prix: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prix
	for rows.Next() {
		var p entity.Prix
		if err := rows.Scan(&p.ID, &p.Type, &p.NomArticle, &p.Reference,
			&p.PrixCarton, &p.PrixDetail, &p.PrixAchat, &p.PrixVente,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prix: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete supprime une fiche par ID.
func (r *PrixRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM prix WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prix: %w", err)
	}
	return nil
}
