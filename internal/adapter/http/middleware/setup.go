package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
)

// Config selects the optional parts of the middleware chain.
type Config struct {
	Recovery RecoveryConfig

	// Metrics enables per-route request metrics when non-nil
	Metrics *metrics.Metrics
}

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries the request ID
//  2. RequestLogger, which logs the final status of every request
//  3. HTTPMetrics, when metrics are enabled
//  4. Recover, innermost, so a panic still produces a logged 500
//
// Setup must be called before routes are registered.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, Config{Recovery: DefaultRecoveryConfig()})
}

// SetupWithConfig registers middleware with custom configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(Chain(log, config)...)
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, config Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
	}
	if config.Metrics != nil {
		chain = append(chain, HTTPMetrics(config.Metrics))
	}
	return append(chain, RecoverWithConfig(log, config.Recovery))
}
