package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flysnipe/flysnipe/internal/adapter/backend"
	"github.com/flysnipe/flysnipe/internal/adapter/storage/sqlite"
	"github.com/flysnipe/flysnipe/internal/config"
	"github.com/flysnipe/flysnipe/internal/infrastructure/logger"
	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
)

// app holds what every subcommand needs. It is populated by the root
// command's pre-run hook.
type app struct {
	dbPath     string
	backendURL string
	logLevel   string

	cfg     *config.Config
	logger  *logger.Logger
	metrics *metrics.Metrics
	store   *sqlite.Store
	client  *backend.Client
}

// execute runs the CLI with args and releases the local store afterwards.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "flysnipe",
		Short:         "FlySnipe - flight offer search with a premium tier",
		Long:          `FlySnipe searches flight offers, filters, sorts and pages through them, and unlocks the full result set with a premium upgrade.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.dbPath, "db", "", "local database path (default: $STORAGE_PATH)")
	flags.StringVar(&a.backendURL, "backend", "", "backend URL (default: $BACKEND_URL)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSearchCmd(a),
		newUpgradeCmd(a),
		newVerifyCmd(a),
		newStatusCmd(a),
		newLogoutCmd(a),
		newSweepCmd(a),
	)
	return root
}

// open loads configuration and opens the local store and backend client.
func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Storage.Path = a.dbPath
	}
	if a.backendURL != "" {
		cfg.Client.BackendURL = a.backendURL
	}
	a.cfg = cfg

	a.logger = logger.NewWithOutput(logger.Config{
		Level:       a.logLevel,
		Format:      "console",
		ServiceName: logger.ServiceCLI,
	}, cmd.ErrOrStderr())

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New()
	}

	store, err := sqlite.Open(cfg.Storage.Path, sqlite.Options{
		Logger: a.logger.WithComponent("storage").Logger,
	})
	if err != nil {
		return err
	}
	a.store = store

	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Client.BackendURL,
		Timeout: cfg.Client.Timeout,
		Logger:  a.logger.Logger,
	})
	if err != nil {
		return errors.Join(err, a.close())
	}
	a.client = client
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
