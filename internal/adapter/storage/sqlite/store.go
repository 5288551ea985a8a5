// Package sqlite persists FlySnipe state in a SQLite database.
//
// The same Store backs the CLI's local flags (entitlement, pending payment,
// last query) and the backend's repositories (checkout transactions, search
// log, users). Each process opens its own database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

// DefaultSweepInterval is how often expired keys are removed.
const DefaultSweepInterval = 5 * time.Minute

const privateDirPerm = 0o700

// Options configures a Store.
type Options struct {
	Clock  timeutil.Clock
	Logger zerolog.Logger
}

// Store is a SQLite-backed implementation of the FlySnipe repositories.
// It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	clock  timeutil.Clock
	logger zerolog.Logger
}

// Open opens (or creates) the database at path. The special path ":memory:"
// opens a private in-memory database.
func Open(path string, opts Options) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		path = filepath.Clean(path)
		if err := os.MkdirAll(filepath.Dir(path), privateDirPerm); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		dsn = path
	}
	dsn += "?" + url.Values{
		"_pragma": []string{
			"busy_timeout(30000)",
			"journal_mode(WAL)",
			"synchronous(NORMAL)",
			"foreign_keys(ON)",
		},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	clock := opts.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	s := &Store{
		db:     db,
		clock:  clock,
		logger: opts.Logger.With().Str("component", "storage").Logger(),
	}
	if err := s.initSchema(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, errors.Join(err, fmt.Errorf("close storage db after schema init failure: %w", closeErr))
		}
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		expires_at INTEGER,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_kv_expires_at ON kv(expires_at);

	CREATE TABLE IF NOT EXISTS checkout_transactions (
		session_id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		package_id TEXT NOT NULL,
		amount REAL NOT NULL,
		currency TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_checkout_email ON checkout_transactions(email);

	CREATE TABLE IF NOT EXISTS search_log (
		id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_date TEXT NOT NULL,
		passengers INTEGER NOT NULL,
		premium INTEGER NOT NULL,
		results_count INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_search_log_created_at ON search_log(created_at);

	CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		is_premium INTEGER NOT NULL DEFAULT 0,
		premium_activated_at INTEGER,
		subscription_type TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init storage schema: %w", err)
	}
	return nil
}

// RunSweeper removes expired keys every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				s.logger.Warn().Err(err).Msg("Failed to sweep expired keys")
				continue
			}
			if n > 0 {
				s.logger.Debug().Int64("removed", n).Msg("Swept expired keys")
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the open database, or an error once the store is closed.
// Caller holds the lock.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, fmt.Errorf("store is closed")
	}
	return s.db, nil
}

func toUnixNano(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
