package sqlite

import (
	"context"
	"fmt"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// RecordSearch appends a search to the search log.
func (s *Store) RecordSearch(ctx context.Context, rec domain.SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO search_log
		 (id, origin, destination, departure_date, passengers, premium, results_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.From, rec.To, rec.DepartureDate, rec.Passengers, boolToInt(rec.Premium),
		rec.ResultsCount, toUnixNano(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert search record: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit search records, newest first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, origin, destination, departure_date, passengers, premium, results_count, created_at
		 FROM search_log ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query search log: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SearchRecord, 0, limit)
	for rows.Next() {
		var rec domain.SearchRecord
		var premium int
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.From, &rec.To, &rec.DepartureDate, &rec.Passengers, &premium, &rec.ResultsCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan search record: %w", err)
		}
		rec.Premium = premium != 0
		rec.CreatedAt = fromUnixNano(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search log: %w", err)
	}
	return records, nil
}

// Ensure Store implements domain.SearchRecorder at compile time.
var _ domain.SearchRecorder = (*Store)(nil)
