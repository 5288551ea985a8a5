// Package integration runs the FlySnipe backend over real HTTP against an
// in-memory store and drives it with the CLI-side client and use cases.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/adapter/backend"
	"github.com/flysnipe/flysnipe/internal/adapter/storage/sqlite"
	"github.com/flysnipe/flysnipe/internal/config"
	"github.com/flysnipe/flysnipe/internal/infrastructure/retry"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
	"github.com/flysnipe/flysnipe/internal/server"
	"github.com/flysnipe/flysnipe/internal/usecase"
	"github.com/flysnipe/flysnipe/test/testutil"
)

// fixedNow is the backend clock's starting time in every test environment.
const fixedNow = "2026-11-20T10:00:00Z"

// Env is a running backend plus a client-side store and backend client.
type Env struct {
	Server *httptest.Server
	App    *server.Server

	// BackendStore holds checkout transactions, users and the search log
	BackendStore *sqlite.Store

	// LocalStore holds the CLI's entitlement, pending payment and last search
	LocalStore *sqlite.Store

	Client *backend.Client
	Clock  *timeutil.MockClock
}

// NewEnv starts a backend on a loopback listener. Everything is torn down
// when the test ends.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	clock := timeutil.NewMockClockFromString(fixedNow)
	logger := testutil.TestLogger(t)

	backendStore, err := sqlite.Open(":memory:", sqlite.Options{Clock: clock, Logger: logger})
	require.NoError(t, err)
	localStore, err := sqlite.Open(":memory:", sqlite.Options{Logger: logger})
	require.NoError(t, err)

	ts := httptest.NewUnstartedServer(nil)
	baseURL := "http://" + ts.Listener.Addr().String()

	app, err := server.New(server.Options{
		Config:    testConfig(baseURL),
		Store:     backendStore,
		Logger:    logger,
		Clock:     clock,
		Generator: usecase.NewOfferGenerator(42),
	})
	require.NoError(t, err)

	ts.Config.Handler = app.Handler()
	ts.Start()

	noRetry := retry.BackendConfig.WithMaxAttempts(1)
	client, err := backend.NewClient(backend.Config{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Retry:   &noRetry,
		Logger:  logger,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ts.Close()
		_ = backendStore.Close()
		_ = localStore.Close()
	})

	return &Env{
		Server:       ts,
		App:          app,
		BackendStore: backendStore,
		LocalStore:   localStore,
		Client:       client,
		Clock:        clock,
	}
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Timeouts: config.TimeoutConfig{
			Request:     5 * time.Second,
			StatusQuery: time.Second,
		},
		Logging:  config.LoggingConfig{Level: "debug", Format: "json"},
		App:      config.AppConfig{Env: "test"},
		Storage:  config.StorageConfig{Path: ":memory:", SweepInterval: time.Minute},
		Checkout: config.CheckoutConfig{BaseURL: baseURL, SessionTTL: usecase.DefaultCheckoutSessionTTL},
		Client:   config.ClientConfig{BackendURL: baseURL, Timeout: 5 * time.Second},
		Upgrade:  config.UpgradeConfig{PollInterval: 10 * time.Millisecond, MaxAttempts: 5},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

// Response is a decoded HTTP answer.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do sends a request to the backend. A non-nil body is sent as JSON.
func (e *Env) Do(t *testing.T, method, path string, body interface{}) Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return Response{Code: resp.StatusCode, Body: buf.Bytes(), Headers: resp.Header}
}

// Decode unmarshals the response body into v.
func (r Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "body: %s", r.Body)
}

// SearchBody is the JSON body of a search request.
type SearchBody struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers,omitempty"`
	Premium       bool   `json:"premium,omitempty"`
}

// DefaultSearch returns a valid free-tier search body.
func DefaultSearch() SearchBody {
	return SearchBody{
		From:          "New York",
		To:            "London",
		DepartureDate: "2026-12-01",
		Passengers:    1,
	}
}

// ErrorBody is the JSON shape of an error response.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}
