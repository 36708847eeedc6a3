package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "saly_tourisme/internal/adapters/http_server"
	"saly_tourisme/internal/adapters/memory"
	"saly_tourisme/internal/adapters/observability"
	redisad "saly_tourisme/internal/adapters/redis"
	"saly_tourisme/internal/app"
	"saly_tourisme/internal/content"
	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/shared"
	mysqlrepo "saly_tourisme/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// content: MySQL when configured, otherwise the built-in catalog
	var catalog *app.CatalogService
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")

		catalog, err = app.LoadCatalogService(ctx, mysqlrepo.New(db))
		if err != nil {
			log.Fatal().Err(err).Msg("catalog load failed")
		}
	} else {
		log.Info().Msg("MYSQL_DSN empty, serving built-in catalog")
		catalog = app.NewCatalogService(content.Static())
	}

	// sessions: redis when configured, otherwise in-process
	var sessions domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		sessions = rc
	} else {
		log.Info().Msg("REDIS_ADDR empty, keeping sessions in memory")
		mc := memory.New()
		go mc.RunSweeper(ctx, time.Minute)
		sessions = mc
	}

	// http
	srv := server.New(server.Options{CORSOrigins: cfg.CORSOrigins, ContactRPS: cfg.ContactRPS})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Catalog:      catalog,
		Reservations: app.NewReservationService(catalog, sessions, cfg.SessionTTL),
		Contact:      app.NewContactService(),
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
