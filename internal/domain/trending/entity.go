package trending

import (
	"context"
	"time"
)

// Repo is one trending repository scraped from GitHub's trending page.
type Repo struct {
	Rank        int       `json:"rank"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	StarsToday  int       `json:"stars_today"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Repository stores the latest trending snapshot. ReplaceAll swaps the whole
// snapshot atomically so readers never see a partial refresh.
type Repository interface {
	ReplaceAll(ctx context.Context, repos []Repo) error
	List(ctx context.Context, language string, limit int) ([]Repo, error)
}
