package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"
)

func main() {
	languages := flag.String("languages", "python,go,javascript", "comma-separated languages to scrape (empty entry means all languages)")
	workers := flag.Int("workers", 3, "concurrent scrape workers")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	langs := make([]string, 0)
	for _, l := range strings.Split(*languages, ",") {
		langs = append(langs, strings.TrimSpace(l))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sc := scraper.NewTrendingScraper(repository.NewPostgresTrendingRepository(c.DB), c.Logger)
	if err := sc.Refresh(ctx, langs, *workers); err != nil {
		log.Fatalf("trending refresh failed: %v", err)
	}
	log.Printf("trending refresh complete")
}
