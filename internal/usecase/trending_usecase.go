package usecase

import (
	"context"
	"log"

	"career-compass/internal/domain/trending"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/scraper"
)

type TrendingUsecase interface {
	List(ctx context.Context, language string, limit int) ([]trending.Repo, error)
	Refresh(ctx context.Context, languages []string, workers int) error
}

type Trending struct {
	repos   trending.Repository
	scraper *scraper.TrendingScraper
	cache   *cache.Redis
	logger  *log.Logger
}

func NewTrendingUsecase(repos trending.Repository, sc *scraper.TrendingScraper, c *cache.Redis, logger *log.Logger) *Trending {
	return &Trending{repos: repos, scraper: sc, cache: c, logger: logger}
}

func (t *Trending) List(ctx context.Context, language string, limit int) ([]trending.Repo, error) {
	key := cache.TrendingKey(language)

	var cached []trending.Repo
	if hit, err := t.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	repos, err := t.repos.List(ctx, language, limit)
	if err != nil {
		return nil, ErrInternal
	}

	if err := t.cache.SetJSON(ctx, key, repos, 0); err != nil && t.logger != nil {
		t.logger.Printf("[Trending] cache set failed | key=%s err=%v", key, err)
	}
	return repos, nil
}

func (t *Trending) Refresh(ctx context.Context, languages []string, workers int) error {
	if err := t.scraper.Refresh(ctx, languages, workers); err != nil {
		return ErrInternal
	}
	if err := t.cache.DeleteByPattern(ctx, "trending:*"); err != nil && t.logger != nil {
		t.logger.Printf("[Trending] cache invalidate failed | err=%v", err)
	}
	return nil
}
