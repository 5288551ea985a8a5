// Package main is the entry point for the FlySnipe backend.
//
//	@title						FlySnipe API
//	@version					1.0.0
//	@description				Flight offer search with a free and premium tier, hosted checkout and payment status queries.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flysnipe/flysnipe/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/flysnipe/flysnipe/internal/adapter/storage/sqlite"
	"github.com/flysnipe/flysnipe/internal/config"
	"github.com/flysnipe/flysnipe/internal/infrastructure/logger"
	"github.com/flysnipe/flysnipe/internal/server"
)

func main() {
	cfg := config.MustLoad()

	lg := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.ServiceServer,
	})
	logger.SetGlobal(lg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Path).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	store, err := sqlite.Open(cfg.Storage.Path, sqlite.Options{
		Logger: lg.WithComponent("storage").Logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing storage")
		}
	}()

	srv, err := server.New(server.Options{
		Config: cfg,
		Store:  store,
		Logger: lg.Logger,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
