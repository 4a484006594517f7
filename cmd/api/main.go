package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/localmark/store-directory/internal/api"
	"github.com/localmark/store-directory/internal/infrastructure/config"
	"github.com/localmark/store-directory/internal/infrastructure/db/memory"
	"github.com/localmark/store-directory/pkg/logger"
)

func main() {
	// Optional .env for local development; silently skipped if absent.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogPretty)

	db := memory.New()
	if cfg.SeedDemoData {
		if err := memory.Seed(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("seeding demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
