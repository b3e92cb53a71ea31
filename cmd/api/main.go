package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growtiva/crm-api/internal/api"
	"github.com/growtiva/crm-api/internal/infrastructure/config"
	"github.com/growtiva/crm-api/internal/infrastructure/db/postgres"
	"github.com/growtiva/crm-api/pkg/logger"
)

// @title        CRM API
// @version      0.1.0
// @description  CRM backend for managing clients, prospects, and content items.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer pool.Close()

	// Production schemas are applied through managed migrations.
	if cfg.Env == "development" {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("schema bootstrap failed")
		}
	}

	e := api.NewRouter(pool, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
