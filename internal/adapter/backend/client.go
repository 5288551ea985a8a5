// Package backend is the HTTP client for the FlySnipe backend API.
// It implements the search, payment-status and checkout ports the
// client-side use cases consume.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/retry"
)

// Endpoint paths relative to the base URL.
const (
	pathSearch         = "/api/v1/flights/search"
	pathCheckout       = "/api/v1/checkout/sessions"
	pathCheckoutStatus = "/api/v1/payments/checkout/status/"
	pathPremium        = "/api/v1/users/premium"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxErrorBody limits how much of an error response is read for diagnostics.
const maxErrorBody = 4 << 10

// Config configures a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8080"
	BaseURL string

	// Timeout bounds each request (default: 10s)
	Timeout time.Duration

	// HTTPClient overrides the transport; Timeout is ignored when set
	HTTPClient *http.Client

	// Retry is used for checkout session creation (default: retry.BackendConfig)
	Retry *retry.Config

	Logger zerolog.Logger
}

// Client talks to the backend over HTTP/JSON.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	retryCfg   retry.Config
	logger     zerolog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	retryCfg := retry.BackendConfig
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}
	logger := cfg.Logger.With().Str("component", "backend_client").Logger()
	if retryCfg.OnRetry == nil {
		retryCfg.OnRetry = func(next int, err error, delay time.Duration) {
			logger.Warn().Err(err).Int("attempt", next).Dur("delay", delay).Msg("Retrying backend request")
		}
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		retryCfg:   retryCfg,
		logger:     logger,
	}, nil
}

type searchRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers"`
	Premium       bool   `json:"premium"`
}

type searchResponse struct {
	Flights      []domain.Offer `json:"flights"`
	TotalResults int            `json:"total_results"`
}

// Search fetches offers for criteria. It makes exactly one request;
// any failure is reported as domain.ErrSearchFailed.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Offer, error) {
	body := searchRequest{
		From:          criteria.From,
		To:            criteria.To,
		DepartureDate: criteria.DepartureDate,
		Passengers:    criteria.Passengers,
		Premium:       criteria.Premium,
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, pathSearch, body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}
	if resp.Flights == nil {
		resp.Flights = []domain.Offer{}
	}
	return resp.Flights, nil
}

// QueryStatus asks for the payment status of a checkout session. It makes
// exactly one request. A "paid" payment status reports domain.PaymentPaid,
// an "expired" session reports domain.PaymentExpired, anything else is
// passed through. Failures wrap domain.ErrTransientQuery.
func (c *Client) QueryStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error) {
	if sessionID == "" {
		return domain.PaymentStatus{}, domain.WrapInvalidArgument("session id is required")
	}

	var raw map[string]interface{}
	if err := c.do(ctx, http.MethodGet, pathCheckoutStatus+url.PathEscape(sessionID), nil, &raw); err != nil {
		return domain.PaymentStatus{}, fmt.Errorf("%w: %w", domain.ErrTransientQuery, err)
	}
	return interpretStatus(raw), nil
}

// interpretStatus maps a raw status response onto the values the upgrade
// confirmation reacts to.
func interpretStatus(raw map[string]interface{}) domain.PaymentStatus {
	paymentStatus, _ := raw["payment_status"].(string)
	status, _ := raw["status"].(string)

	switch {
	case paymentStatus == domain.PaymentPaid:
		return domain.PaymentStatus{Status: domain.PaymentPaid, Raw: raw}
	case status == domain.SessionExpired:
		return domain.PaymentStatus{Status: domain.PaymentExpired, Raw: raw}
	default:
		return domain.PaymentStatus{Status: status, Raw: raw}
	}
}

type checkoutRequest struct {
	PackageID string `json:"package_id"`
	Email     string `json:"email,omitempty"`
}

type checkoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CreateCheckoutSession starts a hosted checkout and returns the session and
// the URL to send the user to. Transport errors and 5xx answers are retried;
// 4xx answers are not.
func (c *Client) CreateCheckoutSession(ctx context.Context, packageID, email string) (domain.CheckoutSession, string, error) {
	body := checkoutRequest{PackageID: packageID, Email: email}

	resp, err := retry.DoWithResult(ctx, func() (checkoutResponse, error) {
		var out checkoutResponse
		err := c.do(ctx, http.MethodPost, pathCheckout, body, &out)
		if err != nil && !domain.IsRetryable(err) {
			return out, retry.NewPermanent(err)
		}
		return out, err
	}, c.retryCfg)
	if err != nil {
		return domain.CheckoutSession{}, "", fmt.Errorf("create checkout session: %w", err)
	}
	if resp.SessionID == "" || resp.URL == "" {
		return domain.CheckoutSession{}, "", fmt.Errorf("create checkout session: incomplete response")
	}

	return domain.CheckoutSession{ID: resp.SessionID, CreatedAt: time.Now().UTC()}, resp.URL, nil
}

type premiumResponse struct {
	Email     string `json:"email"`
	IsPremium bool   `json:"is_premium"`
}

// CheckPremium asks whether the account with email is premium.
// Unknown accounts report domain.ErrNotFound.
func (c *Client) CheckPremium(ctx context.Context, email string) (bool, error) {
	var resp premiumResponse
	err := c.do(ctx, http.MethodGet, pathPremium+"?"+url.Values{"email": []string{email}}.Encode(), nil, &resp)
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return false, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return false, err
	}
	return resp.IsPremium, nil
}

// do sends one request and decodes a 2xx JSON answer into out.
// Non-2xx answers become *domain.RemoteError, retryable for 5xx and 429.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	endpoint := c.baseURL.String() + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewRetryableRemoteError(path, 0, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		cause := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return domain.NewRetryableRemoteError(path, resp.StatusCode, cause)
		}
		return domain.NewRemoteError(path, resp.StatusCode, cause)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewRemoteError(path, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Ensure Client implements the consumed ports at compile time.
var (
	_ domain.SearchClient         = (*Client)(nil)
	_ domain.PaymentStatusQuerier = (*Client)(nil)
	_ domain.CheckoutCreator      = (*Client)(nil)
)
