package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// CreateTransaction stores a new checkout transaction.
func (s *Store) CreateTransaction(ctx context.Context, tx domain.CheckoutTransaction) error {
	if tx.SessionID == "" {
		return domain.WrapInvalidArgument("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO checkout_transactions
		 (session_id, email, package_id, amount, currency, payment_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.SessionID, tx.Email, tx.PackageID, tx.Amount, tx.Currency, tx.PaymentStatus,
		toUnixNano(tx.CreatedAt), toUnixNano(tx.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert checkout transaction: %w", err)
	}
	return nil
}

// GetTransaction loads a transaction. Unknown sessions report domain.ErrSessionNotFound.
func (s *Store) GetTransaction(ctx context.Context, sessionID string) (domain.CheckoutTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return domain.CheckoutTransaction{}, err
	}

	var tx domain.CheckoutTransaction
	var createdAt, updatedAt int64
	row := db.QueryRowContext(ctx,
		`SELECT session_id, email, package_id, amount, currency, payment_status, created_at, updated_at
		 FROM checkout_transactions WHERE session_id = ?`, sessionID)
	if err := row.Scan(&tx.SessionID, &tx.Email, &tx.PackageID, &tx.Amount, &tx.Currency, &tx.PaymentStatus, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CheckoutTransaction{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		return domain.CheckoutTransaction{}, fmt.Errorf("load checkout transaction: %w", err)
	}
	tx.CreatedAt = fromUnixNano(createdAt)
	tx.UpdatedAt = fromUnixNano(updatedAt)
	return tx, nil
}

// MarkPaid sets the transaction's payment status to paid.
func (s *Store) MarkPaid(ctx context.Context, sessionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		`UPDATE checkout_transactions SET payment_status = ?, updated_at = ? WHERE session_id = ?`,
		domain.PaymentPaid, toUnixNano(at), sessionID,
	)
	if err != nil {
		return fmt.Errorf("mark checkout transaction paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get mark paid rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}

// Ensure Store implements domain.CheckoutRepository at compile time.
var _ domain.CheckoutRepository = (*Store)(nil)
