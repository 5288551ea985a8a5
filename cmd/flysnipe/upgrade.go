package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

func newUpgradeCmd(a *app) *cobra.Command {
	var packageID, email string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Start a premium checkout",
		Long: `Create a hosted checkout session for a premium package and print its URL.

Open the URL to pay, then run "flysnipe verify" to unlock premium.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpgrade(cmd, packageID, email)
		},
	}

	cmd.Flags().StringVar(&packageID, "package", "monthly", "premium package: monthly or yearly")
	cmd.Flags().StringVar(&email, "email", "", "account email (default: anonymous checkout)")
	return cmd
}

func (a *app) runUpgrade(cmd *cobra.Command, packageID, email string) error {
	ctx := cmd.Context()

	pkg, err := domain.LookupPackage(strings.ToLower(strings.TrimSpace(packageID)))
	if err != nil {
		return fmt.Errorf("%w: %q", err, packageID)
	}

	session, url, err := a.client.CreateCheckoutSession(ctx, pkg.ID, strings.TrimSpace(email))
	if err != nil {
		return err
	}

	pending := domain.PendingPayment{SessionID: session.ID, CreatedAt: session.CreatedAt}
	if err := a.store.SavePendingPayment(ctx, pending); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %.2f %s\n", pkg.Description, pkg.Price, strings.ToUpper(pkg.Currency))
	fmt.Fprintf(out, "Complete your purchase at:\n  %s\n", url)
	fmt.Fprintf(out, "Then run: flysnipe verify --session %s\n", session.ID)
	return nil
}

// errNotConfirmed is returned when verification ends without a payment.
var errNotConfirmed = errors.New("upgrade not confirmed")

func newVerifyCmd(a *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Confirm a premium payment",
		Long: `Poll the payment status of a checkout session until it is paid, expires,
or the attempt budget runs out. On success the premium entitlement is saved.

Without --session the pending checkout from "flysnipe upgrade" is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd, sessionID)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "checkout session ID")
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, sessionID string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	session, err := a.sessionToVerify(ctx, sessionID)
	if err != nil {
		return err
	}

	// OnEntitlement runs before Done closes, so saveErr is safe to read after Wait.
	var saveErr error
	m := usecase.NewUpgradeConfirmation(a.client, &usecase.UpgradeConfig{
		PollInterval: a.cfg.Upgrade.PollInterval,
		MaxAttempts:  a.cfg.Upgrade.MaxAttempts,
		QueryTimeout: a.cfg.Timeouts.StatusQuery,
		Clock:        timeutil.NewRealClock(),
		Scheduler:    timeutil.NewRealScheduler(),
		Logger:       a.logger.Logger,
		Metrics:      a.metrics,
		OnTransition: func(ev usecase.UpgradeEvent) {
			a.logger.Debug().
				Str("session_id", ev.SessionID).
				Str("from", ev.From.String()).
				Str("to", ev.To.String()).
				Int("attempts", ev.Attempts).
				Msg("Upgrade state changed")
		},
		OnEntitlement: func(ent domain.Entitlement) {
			// The command context may already be canceled here
			saveCtx := context.WithoutCancel(ctx)
			if err := a.store.SaveEntitlement(saveCtx, ent); err != nil {
				saveErr = err
				return
			}
			if err := a.store.ClearPendingPayment(saveCtx); err != nil {
				a.logger.Warn().Err(err).Msg("Failed to clear pending payment")
			}
		},
	})

	if err := m.Start(session); err != nil {
		return err
	}
	fmt.Fprintf(out, "Verifying payment for session %s...\n", session.ID)

	state, err := m.Wait(ctx)
	if err != nil {
		if state, err = stopVerification(m, err); err != nil {
			return err
		}
	}

	return reportVerification(out, state, m.Attempts(), m.LastError(), saveErr)
}

// stopVerification cancels m after waiting was interrupted by cause. A
// payment confirmed before the cancel took effect still counts.
func stopVerification(m *usecase.UpgradeConfirmation, cause error) (usecase.UpgradeState, error) {
	if err := m.Cancel(); err != nil && !errors.Is(err, domain.ErrInvalidState) {
		return m.State(), errors.Join(cause, err)
	}
	<-m.Done()

	state := m.State()
	if state != usecase.StateSucceeded {
		return state, fmt.Errorf("%w: verification interrupted", errNotConfirmed)
	}
	return state, nil
}

// reportVerification turns the final state of a verification into the
// command's output and error.
func reportVerification(out io.Writer, state usecase.UpgradeState, attempts int, lastErr, saveErr error) error {
	switch state {
	case usecase.StateSucceeded:
		if saveErr != nil {
			return fmt.Errorf("payment confirmed but saving premium failed: %w", saveErr)
		}
		fmt.Fprintln(out, "Payment confirmed. Premium unlocked!")
		return nil
	case usecase.StateExpired:
		return fmt.Errorf("%w: checkout session expired, run flysnipe upgrade again", errNotConfirmed)
	case usecase.StateTimedOut:
		return fmt.Errorf("%w: payment not received after %d checks, run flysnipe verify again later", errNotConfirmed, attempts)
	default:
		return fmt.Errorf("%w: %w", errNotConfirmed, lastErr)
	}
}

// sessionToVerify returns the explicit session or the pending checkout.
func (a *app) sessionToVerify(ctx context.Context, sessionID string) (domain.CheckoutSession, error) {
	if id := strings.TrimSpace(sessionID); id != "" {
		return domain.CheckoutSession{ID: id}, nil
	}

	pending, err := a.store.LoadPendingPayment(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CheckoutSession{}, errors.New("no pending checkout; run flysnipe upgrade or pass --session")
		}
		return domain.CheckoutSession{}, err
	}
	return domain.CheckoutSession{ID: pending.SessionID, CreatedAt: pending.CreatedAt}, nil
}
