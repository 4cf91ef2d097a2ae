package repository

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/trending"
)

const defaultTrendingLimit = 25

type PostgresTrendingRepository struct {
	db database.DB
}

func NewPostgresTrendingRepository(db database.DB) *PostgresTrendingRepository {
	return &PostgresTrendingRepository{db: db}
}

// ReplaceAll swaps the stored snapshot inside one transaction so concurrent
// readers see either the old snapshot or the new one, never a mix.
func (r *PostgresTrendingRepository) ReplaceAll(ctx context.Context, repos []trending.Repo) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin trending refresh: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM trending_repos`); err != nil {
		return fmt.Errorf("clear trending snapshot: %w", err)
	}
	for _, repo := range repos {
		_, err := tx.Exec(ctx,
			`INSERT INTO trending_repos (rank, name, url, description, language, stars, stars_today, fetched_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			repo.Rank, repo.Name, repo.URL, repo.Description, repo.Language, repo.Stars, repo.StarsToday, repo.FetchedAt,
		)
		if err != nil {
			return fmt.Errorf("insert trending repo %s: %w", repo.Name, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresTrendingRepository) List(ctx context.Context, language string, limit int) ([]trending.Repo, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	query := `SELECT rank, name, url, description, language, stars, stars_today, fetched_at
		 FROM trending_repos`
	args := []any{}
	if language != "" {
		query += ` WHERE LOWER(language) = LOWER($1)`
		args = append(args, language)
	}
	query += fmt.Sprintf(` ORDER BY rank ASC LIMIT %d`, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repos := make([]trending.Repo, 0, limit)
	for rows.Next() {
		var repo trending.Repo
		if err := rows.Scan(&repo.Rank, &repo.Name, &repo.URL, &repo.Description, &repo.Language,
			&repo.Stars, &repo.StarsToday, &repo.FetchedAt); err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, rows.Err()
}
