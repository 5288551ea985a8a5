// Package server assembles the FlySnipe backend: storage, use cases, HTTP
// routes and middleware, and the background storage sweeper.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"

	// Register the generated API docs
	_ "github.com/flysnipe/flysnipe/docs"

	flyhttp "github.com/flysnipe/flysnipe/internal/adapter/http"
	"github.com/flysnipe/flysnipe/internal/adapter/http/middleware"
	"github.com/flysnipe/flysnipe/internal/adapter/storage/sqlite"
	"github.com/flysnipe/flysnipe/internal/config"
	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

// Options holds the collaborators of a Server.
type Options struct {
	Config *config.Config

	// Store backs the checkout, user and search log repositories
	Store *sqlite.Store

	Logger zerolog.Logger

	// Clock defaults to the real clock
	Clock timeutil.Clock

	// Generator defaults to a time-seeded generator
	Generator *usecase.OfferGenerator
}

// Server is the backend HTTP API.
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	store   *sqlite.Store
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// New wires the use cases and routes. It does not start listening.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("server: store is required")
	}

	cfg := opts.Config
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	generator := opts.Generator
	if generator == nil {
		generator = usecase.NewTimeSeededOfferGenerator()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	search := usecase.NewOfferSearchUseCase(generator, &usecase.OfferSearchConfig{
		Recorder: opts.Store,
		Clock:    clock,
		Metrics:  m,
		Logger:   opts.Logger,
	})
	checkout := usecase.NewCheckoutUseCase(opts.Store, opts.Store, usecase.CheckoutConfig{
		BaseURL:    cfg.Checkout.BaseURL,
		SessionTTL: cfg.Checkout.SessionTTL,
		Clock:      clock,
		Metrics:    m,
		Logger:     opts.Logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, opts.Logger, middleware.Config{
		Recovery: middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
		Metrics:  m,
	})

	handler := flyhttp.NewHandler(search, checkout)
	flyhttp.RegisterRoutesWithMiddleware(e, handler, echomw.ContextTimeout(cfg.Timeouts.Request))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	return &Server{
		echo:    e,
		cfg:     cfg,
		store:   opts.Store,
		metrics: m,
		logger:  opts.Logger,
	}, nil
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the server's metrics, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Run serves on the configured port and sweeps expired storage keys until
// ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", addr).Msg("Starting server")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.store.RunSweeper(gctx, s.cfg.Storage.SweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("Server stopped")
	return err
}
