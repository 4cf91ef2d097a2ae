package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"career-compass/internal/domain/trending"
)

const githubBase = "https://github.com"

// TrendingScraper refreshes the stored snapshot of GitHub's trending page.
// When GitHub cannot be reached it falls back to a small built-in snapshot so
// downstream recommendations keep working offline.
type TrendingScraper struct {
	repo   trending.Repository
	logger *log.Logger
}

func NewTrendingScraper(repo trending.Repository, logger *log.Logger) *TrendingScraper {
	return &TrendingScraper{repo: repo, logger: logger}
}

// Refresh scrapes each language concurrently and replaces the snapshot with
// the combined result. An empty language entry scrapes the all-languages page.
func (s *TrendingScraper) Refresh(ctx context.Context, languages []string, workers int) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("nil scraper/repo")
	}
	if len(languages) == 0 {
		languages = []string{""}
	}
	if workers <= 0 {
		workers = 2
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(2)
	results := pool.Run(ctx)

	collected := make(chan []trending.Repo, len(languages))
	for _, lang := range languages {
		lang := lang
		pool.Submit(func(ctx context.Context) error {
			repos, err := s.scrapeLanguage(ctx, lang)
			if err != nil {
				if s.logger != nil {
					s.logger.Printf("[Trending] scrape failed, using fallback | lang=%q err=%v", lang, err)
				}
				repos = fallbackTrending(lang)
			}
			collected <- repos
			return nil
		})
	}
	pool.Close()
	for res := range results {
		if res.Err != nil && s.logger != nil {
			s.logger.Printf("[Trending] worker error | err=%v", res.Err)
		}
	}
	close(collected)

	all := make([]trending.Repo, 0, 25*len(languages))
	for repos := range collected {
		all = append(all, repos...)
	}
	for i := range all {
		all[i].Rank = i + 1
	}

	if err := s.repo.ReplaceAll(ctx, all); err != nil {
		return fmt.Errorf("store trending snapshot: %w", err)
	}
	if s.logger != nil {
		s.logger.Printf("[Trending] snapshot refreshed | repos=%d languages=%d", len(all), len(languages))
	}
	return nil
}

func (s *TrendingScraper) scrapeLanguage(ctx context.Context, language string) ([]trending.Repo, error) {
	url := githubBase + "/trending"
	if lang := strings.TrimSpace(language); lang != "" {
		url += "/" + strings.ToLower(lang)
	}

	c := colly.NewCollector(colly.AllowedDomains("github.com"))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	now := time.Now().UTC()
	repos := make([]trending.Repo, 0, 25)

	c.OnHTML("article.Box-row", func(e *colly.HTMLElement) {
		name := strings.Join(strings.Fields(e.ChildText("h2 a")), "")
		if name == "" {
			return
		}
		href := strings.TrimSpace(e.ChildAttr("h2 a", "href"))

		repos = append(repos, trending.Repo{
			Name:        name,
			URL:         githubBase + href,
			Description: strings.TrimSpace(e.ChildText("p")),
			Language:    pickNonEmpty(e.ChildText("span[itemprop=programmingLanguage]"), language),
			Stars:       parseCount(e.ChildText(`a[href$="/stargazers"]`)),
			StarsToday:  parseCount(e.ChildText("span.d-inline-block.float-sm-right")),
			FetchedAt:   now,
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(url); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("no trending repos parsed")
	}
	return repos, nil
}

func fallbackTrending(language string) []trending.Repo {
	now := time.Now().UTC()
	lang := pickNonEmpty(language, "Python")
	return []trending.Repo{
		{
			Name:        "vinta/awesome-python",
			URL:         "https://github.com/vinta/awesome-python",
			Description: "A curated list of awesome Python frameworks",
			Language:    lang,
			Stars:       200000,
			FetchedAt:   now,
		},
		{
			Name:        "tiangolo/fastapi",
			URL:         "https://github.com/tiangolo/fastapi",
			Description: "Modern, fast web framework for building APIs",
			Language:    lang,
			Stars:       65000,
			FetchedAt:   now,
		},
	}
}
