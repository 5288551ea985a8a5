package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/metrics"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

// Upgrade confirmation defaults.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 10
)

// ErrUpgradeCanceled is recorded as the last error of a confirmation that was canceled.
var ErrUpgradeCanceled = errors.New("upgrade confirmation canceled")

// UpgradeState is a state of the upgrade confirmation.
type UpgradeState int

// Upgrade confirmation states.
const (
	StateIdle UpgradeState = iota
	StateVerifying
	StateSucceeded
	StateExpired
	StateTimedOut
	StateFailed
)

// String returns the lower-case state name.
func (s UpgradeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateVerifying:
		return "verifying"
	case StateSucceeded:
		return "succeeded"
	case StateExpired:
		return "expired"
	case StateTimedOut:
		return "timed_out"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s UpgradeState) IsTerminal() bool {
	switch s {
	case StateSucceeded, StateExpired, StateTimedOut, StateFailed:
		return true
	default:
		return false
	}
}

// UpgradeEvent describes one state transition.
type UpgradeEvent struct {
	SessionID string
	From      UpgradeState
	To        UpgradeState

	// Attempts is the number of non-conclusive polls so far
	Attempts int

	// Err is the last query error, if any
	Err error

	At time.Time
}

// UpgradeConfig configures an UpgradeConfirmation.
type UpgradeConfig struct {
	// PollInterval is the delay between non-conclusive polls (default: 2s)
	PollInterval time.Duration

	// MaxAttempts is the number of non-conclusive polls before giving up (default: 10)
	MaxAttempts int

	// QueryTimeout bounds each status query; zero means no bound
	QueryTimeout time.Duration

	Clock     timeutil.Clock
	Scheduler timeutil.Scheduler
	Logger    zerolog.Logger

	// Metrics counts terminal outcomes; nil disables it
	Metrics *metrics.Metrics

	// OnTransition is called after every transition, outside the state lock.
	// Observer calls never overlap and must not call Start or Cancel.
	OnTransition func(UpgradeEvent)

	// OnEntitlement receives the premium entitlement exactly once on success.
	// It runs before the Succeeded transition is reported and before Done closes.
	OnEntitlement func(domain.Entitlement)
}

// DefaultUpgradeConfig returns the default configuration on the real clock.
func DefaultUpgradeConfig() UpgradeConfig {
	return UpgradeConfig{
		PollInterval: DefaultPollInterval,
		MaxAttempts:  DefaultMaxAttempts,
		Clock:        timeutil.NewRealClock(),
		Scheduler:    timeutil.NewRealScheduler(),
		Logger:       zerolog.Nop(),
	}
}

// UpgradeConfirmation confirms a premium purchase by polling the payment
// status of a checkout session until a conclusive answer arrives or the
// attempt budget runs out.
//
// The lifecycle is single-use:
//
//	Idle -> Verifying -> {Succeeded | Expired | TimedOut | Failed}
//
// Terminal states are absorbing. At most one status query is in flight at a
// time and polls are strictly sequential. Responses that arrive after a
// terminal transition are discarded.
type UpgradeConfirmation struct {
	querier domain.PaymentStatusQuerier
	cfg     UpgradeConfig
	logger  zerolog.Logger

	// emitMu serializes observer calls; it is always taken before mu
	emitMu sync.Mutex

	mu          sync.Mutex
	state       UpgradeState
	session     domain.CheckoutSession
	attempts    int
	lastErr     error
	generation  uint64
	timer       timeutil.Timer
	ctx         context.Context
	stop        context.CancelFunc
	cancelQuery context.CancelFunc
	done        chan struct{}
}

// NewUpgradeConfirmation creates an idle confirmation.
// If config is nil, DefaultUpgradeConfig is used; zero fields fall back to defaults.
func NewUpgradeConfirmation(querier domain.PaymentStatusQuerier, config *UpgradeConfig) *UpgradeConfirmation {
	cfg := DefaultUpgradeConfig()
	if config != nil {
		if config.PollInterval > 0 {
			cfg.PollInterval = config.PollInterval
		}
		if config.MaxAttempts > 0 {
			cfg.MaxAttempts = config.MaxAttempts
		}
		if config.QueryTimeout > 0 {
			cfg.QueryTimeout = config.QueryTimeout
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Scheduler != nil {
			cfg.Scheduler = config.Scheduler
		}
		cfg.Logger = config.Logger
		cfg.Metrics = config.Metrics
		cfg.OnTransition = config.OnTransition
		cfg.OnEntitlement = config.OnEntitlement
	}

	return &UpgradeConfirmation{
		querier: querier,
		cfg:     cfg,
		logger:  cfg.Logger.With().Str("component", "upgrade").Logger(),
		state:   StateIdle,
		done:    make(chan struct{}),
	}
}

// Start begins confirming session. The first poll is dispatched immediately.
// Start fails with domain.ErrInvalidState unless the confirmation is idle.
func (m *UpgradeConfirmation) Start(session domain.CheckoutSession) error {
	if session.ID == "" {
		return domain.WrapInvalidArgument("session id is required")
	}

	// Held until Verifying has been observed, so the first poll's outcome
	// cannot be reported ahead of it.
	m.emitMu.Lock()
	defer m.emitMu.Unlock()

	m.mu.Lock()
	if m.state != StateIdle {
		state := m.state
		m.mu.Unlock()
		return domain.WrapInvalidState("cannot start upgrade confirmation in state %s", state)
	}

	m.session = session
	m.ctx, m.stop = context.WithCancel(context.Background())
	ev := m.transitionLocked(StateVerifying)
	m.scheduleLocked(0)
	m.mu.Unlock()

	m.logger.Info().Str("session_id", session.ID).Msg("Upgrade confirmation started")
	m.emitLocked(ev, nil)
	return nil
}

// Cancel aborts an active confirmation, moving it to Failed.
// The pending poll is unscheduled and any in-flight query is canceled;
// its late answer is ignored. Cancel fails with domain.ErrInvalidState
// unless the confirmation is verifying.
func (m *UpgradeConfirmation) Cancel() error {
	m.mu.Lock()
	if m.state != StateVerifying {
		state := m.state
		m.mu.Unlock()
		return domain.WrapInvalidState("cannot cancel upgrade confirmation in state %s", state)
	}

	m.lastErr = ErrUpgradeCanceled
	ev := m.transitionLocked(StateFailed)
	m.mu.Unlock()

	m.logger.Info().Str("session_id", ev.SessionID).Int("attempts", ev.Attempts).Msg("Upgrade confirmation canceled")
	m.emit(ev, nil)
	return nil
}

// State returns the current state.
func (m *UpgradeConfirmation) State() UpgradeState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Attempts returns the number of non-conclusive polls so far.
func (m *UpgradeConfirmation) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// LastError returns the most recent query error, or ErrUpgradeCanceled after Cancel.
func (m *UpgradeConfirmation) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Session returns the session being confirmed.
func (m *UpgradeConfirmation) Session() domain.CheckoutSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Done is closed once a terminal state has been reached and observers have run.
func (m *UpgradeConfirmation) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until the confirmation reaches a terminal state or ctx is done.
func (m *UpgradeConfirmation) Wait(ctx context.Context) (UpgradeState, error) {
	select {
	case <-m.done:
		return m.State(), nil
	case <-ctx.Done():
		return m.State(), ctx.Err()
	}
}

// scheduleLocked arms the next poll for the current generation. Caller holds the lock.
func (m *UpgradeConfirmation) scheduleLocked(delay time.Duration) {
	gen := m.generation
	m.timer = m.cfg.Scheduler.AfterFunc(delay, func() {
		m.poll(gen)
	})
}

// poll performs one status query and applies its outcome.
func (m *UpgradeConfirmation) poll(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.state != StateVerifying {
		m.mu.Unlock()
		return
	}
	m.timer = nil

	var queryCtx context.Context
	var cancel context.CancelFunc
	if m.cfg.QueryTimeout > 0 {
		queryCtx, cancel = context.WithTimeout(m.ctx, m.cfg.QueryTimeout)
	} else {
		queryCtx, cancel = context.WithCancel(m.ctx)
	}
	m.cancelQuery = cancel
	sessionID := m.session.ID
	m.mu.Unlock()

	status, err := m.querier.QueryStatus(queryCtx, sessionID)
	cancel()

	m.mu.Lock()
	if gen != m.generation || m.state != StateVerifying {
		m.mu.Unlock()
		m.logger.Debug().Str("session_id", sessionID).Msg("Discarding stale payment status")
		return
	}
	m.cancelQuery = nil

	var (
		ev          UpgradeEvent
		entitlement *domain.Entitlement
		terminal    bool
	)

	switch {
	case err == nil && status.IsPaid():
		e := domain.NewPremiumEntitlement(m.cfg.Clock.Now())
		entitlement = &e
		ev = m.transitionLocked(StateSucceeded)
		terminal = true

	case err == nil && status.IsExpired():
		ev = m.transitionLocked(StateExpired)
		terminal = true

	default:
		m.attempts++
		if err != nil && !errors.Is(err, domain.ErrTransientQuery) {
			err = fmt.Errorf("%w: %w", domain.ErrTransientQuery, err)
		}
		m.lastErr = err

		if m.attempts >= m.cfg.MaxAttempts {
			if err != nil {
				ev = m.transitionLocked(StateFailed)
			} else {
				ev = m.transitionLocked(StateTimedOut)
			}
			terminal = true
		} else {
			m.scheduleLocked(m.cfg.PollInterval)
		}
	}
	attempts := m.attempts
	m.mu.Unlock()

	if !terminal {
		logEvent := m.logger.Debug()
		if err != nil {
			logEvent = m.logger.Warn().Err(err)
		}
		logEvent.
			Str("session_id", sessionID).
			Int("attempt", attempts).
			Str("status", status.Status).
			Msg("Payment not confirmed yet")
		return
	}

	m.logger.Info().
		Str("session_id", sessionID).
		Str("state", ev.To.String()).
		Int("attempts", attempts).
		Msg("Upgrade confirmation finished")
	m.emit(ev, entitlement)
}

// transitionLocked moves to state and returns the event to publish.
// Entering a terminal state invalidates outstanding polls and releases the
// query context. Caller holds the lock.
func (m *UpgradeConfirmation) transitionLocked(to UpgradeState) UpgradeEvent {
	ev := UpgradeEvent{
		SessionID: m.session.ID,
		From:      m.state,
		To:        to,
		Attempts:  m.attempts,
		Err:       m.lastErr,
		At:        m.cfg.Clock.Now(),
	}
	m.state = to

	if to.IsTerminal() {
		m.generation++
		if m.timer != nil {
			m.timer.Stop()
			m.timer = nil
		}
		if m.cancelQuery != nil {
			m.cancelQuery()
			m.cancelQuery = nil
		}
		if m.stop != nil {
			m.stop()
		}
	}
	return ev
}

// emit runs the observers for ev and closes Done after a terminal transition.
// Only the goroutine that performed the terminal transition reaches here with one.
func (m *UpgradeConfirmation) emit(ev UpgradeEvent, entitlement *domain.Entitlement) {
	m.emitMu.Lock()
	defer m.emitMu.Unlock()
	m.emitLocked(ev, entitlement)
}

// emitLocked is emit for a caller that holds emitMu.
func (m *UpgradeConfirmation) emitLocked(ev UpgradeEvent, entitlement *domain.Entitlement) {
	if entitlement != nil && m.cfg.OnEntitlement != nil {
		m.cfg.OnEntitlement(*entitlement)
	}
	if m.cfg.OnTransition != nil {
		m.cfg.OnTransition(ev)
	}
	if ev.To.IsTerminal() {
		m.cfg.Metrics.RecordUpgradeOutcome(ev.To.String())
		close(m.done)
	}
}
