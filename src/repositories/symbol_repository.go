package repositories

import (
	"context"

	"itradebook/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SymbolRepository interface {
	GetAll(ctx context.Context) ([]models.Symbol, error)
}

type symbolRepo struct {
	db *pgxpool.Pool
}

func NewSymbolRepository(db *pgxpool.Pool) SymbolRepository {
	return &symbolRepo{db: db}
}

func (r *symbolRepo) GetAll(ctx context.Context) ([]models.Symbol, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at FROM symbols ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []models.Symbol
	for rows.Next() {
		var s models.Symbol
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}
