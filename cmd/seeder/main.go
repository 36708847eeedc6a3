package main

import (
	"context"
	"database/sql"
	"flag"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"saly_tourisme/internal/adapters/contentfeed"
	"saly_tourisme/internal/adapters/observability"
	"saly_tourisme/internal/app"
	"saly_tourisme/internal/content"
	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/shared"
	mysqlrepo "saly_tourisme/internal/storage/mysql"
)

func main() {
	static := flag.Bool("static", false, "seed the built-in catalog even when FEED_BASE_URL is set")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for seeding")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var feed domain.ContentFeed
	if cfg.FeedBase != "" && !*static {
		client, err := contentfeed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize content feed client")
		}
		feed = client
	}

	seed := app.NewSeedService(feed, mysqlrepo.New(db), cfg.SeedWorkers)

	log.Info().
		Str("source", source(feed)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	cat := content.Static()
	if feed != nil {
		if cat, err = seed.Fetch(ctx); err != nil {
			log.Fatal().Err(err).Str("base", cfg.FeedBase).Msg("content feed fetch failed")
		}
	}

	if _, err := seed.Seed(ctx, cat); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding completed")
}

func source(feed domain.ContentFeed) string {
	if feed == nil {
		return "static"
	}
	return "feed"
}
