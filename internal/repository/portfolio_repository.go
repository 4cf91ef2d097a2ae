package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresPortfolioRepository struct {
	db database.DB
}

func NewPostgresPortfolioRepository(db database.DB) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{db: db}
}

// Save keeps one portfolio per user, replacing any previously rendered page.
func (r *PostgresPortfolioRepository) Save(ctx context.Context, rec portfolio.Record) (portfolio.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO portfolios (id, user_id, theme, html)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		   theme = EXCLUDED.theme,
		   html = EXCLUDED.html,
		   updated_at = NOW()
		 RETURNING id, user_id, theme, html, created_at, updated_at`,
		rec.ID, rec.UserID, rec.Theme, rec.HTML,
	)
	return scanPortfolio(row)
}

func (r *PostgresPortfolioRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (portfolio.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, theme, html, created_at, updated_at
		 FROM portfolios WHERE user_id = $1`, userID)
	return scanPortfolio(row)
}

func scanPortfolio(row database.Row) (portfolio.Record, error) {
	var rec portfolio.Record
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Theme, &rec.HTML, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Record{}, portfolio.ErrNotFound
		}
		return portfolio.Record{}, err
	}
	return rec, nil
}
