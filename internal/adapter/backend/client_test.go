package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/retry"
	"github.com/flysnipe/flysnipe/test/mock"
)

var fastRetry = retry.Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
	Multiplier:   1,
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := fastRetry
	client, err := NewClient(Config{BaseURL: server.URL, Timeout: 2 * time.Second, Retry: &cfg})
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "://bad"} {
		_, err := NewClient(Config{BaseURL: raw})
		assert.Error(t, err, raw)
	}
}

func TestSearch(t *testing.T) {
	offers := mock.SampleOffers(4)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pathSearch, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Paris", req.From)
		assert.Equal(t, "Rome", req.To)
		assert.True(t, req.Premium)

		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"flights":       offers,
			"total_results": len(offers),
		})
	})

	got, err := client.Search(context.Background(), domain.SearchCriteria{
		From: "Paris", To: "Rome", DepartureDate: "2025-07-01", Passengers: 1, Premium: true,
	})

	require.NoError(t, err)
	assert.Equal(t, offers, got)
}

func TestSearch_FailureIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	got, err := client.Search(context.Background(), domain.SearchCriteria{From: "A", To: "B"})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrSearchFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSearch_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{"total_results": 0})
	})

	got, err := client.Search(context.Background(), domain.SearchCriteria{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]interface{}
		expected string
	}{
		{
			name:     "paid",
			body:     map[string]interface{}{"status": "complete", "payment_status": "paid"},
			expected: domain.PaymentPaid,
		},
		{
			name:     "expired",
			body:     map[string]interface{}{"status": "expired", "payment_status": "unpaid"},
			expected: domain.PaymentExpired,
		},
		{
			name:     "open passes through",
			body:     map[string]interface{}{"status": "open", "payment_status": "unpaid"},
			expected: "open",
		},
		{
			name:     "paid wins over expired",
			body:     map[string]interface{}{"status": "expired", "payment_status": "paid"},
			expected: domain.PaymentPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, pathCheckoutStatus+"cs_1", r.URL.Path)
				writeJSON(t, w, http.StatusOK, tt.body)
			})

			status, err := client.QueryStatus(context.Background(), "cs_1")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status.Status)
			assert.Equal(t, tt.body["status"], status.Raw["status"])
		})
	}
}

func TestQueryStatus_FailuresAreTransient(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.QueryStatus(context.Background(), "cs_1")

	assert.ErrorIs(t, err, domain.ErrTransientQuery)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "one request per query")
}

func TestQueryStatus_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.QueryStatus(context.Background(), "cs_1")
	assert.ErrorIs(t, err, domain.ErrTransientQuery)
	assert.True(t, domain.IsRetryable(err))
}

func TestQueryStatus_RequiresSession(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	_, err = client.QueryStatus(context.Background(), "")
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestCreateCheckoutSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathCheckout, r.URL.Path)

		var req checkoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "yearly", req.PackageID)
		assert.Equal(t, "ada@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, checkoutResponse{URL: "https://pay.test/checkout/cs_9", SessionID: "cs_9"})
	})

	session, checkoutURL, err := client.CreateCheckoutSession(context.Background(), "yearly", "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, "cs_9", session.ID)
	assert.False(t, session.CreatedAt.IsZero())
	assert.Equal(t, "https://pay.test/checkout/cs_9", checkoutURL)
}

func TestCreateCheckoutSession_RetriesServerErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, checkoutResponse{URL: "https://pay.test/x", SessionID: "cs_x"})
	})

	session, _, err := client.CreateCheckoutSession(context.Background(), "monthly", "")

	require.NoError(t, err)
	assert.Equal(t, "cs_x", session.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCreateCheckoutSession_ClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"code": "invalid_request", "message": "Invalid package"})
	})

	_, _, err := client.CreateCheckoutSession(context.Background(), "lifetime", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid package")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCreateCheckoutSession_IncompleteResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, checkoutResponse{SessionID: "cs_1"})
	})

	_, _, err := client.CreateCheckoutSession(context.Background(), "monthly", "")
	assert.Error(t, err)
}

func TestCheckPremium(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathPremium, r.URL.Path)
		switch r.URL.Query().Get("email") {
		case "ada@example.com":
			writeJSON(t, w, http.StatusOK, premiumResponse{Email: "ada@example.com", IsPremium: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	premium, err := client.CheckPremium(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.True(t, premium)

	_, err = client.CheckPremium(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInterpretStatus_MissingFields(t *testing.T) {
	status := interpretStatus(map[string]interface{}{})
	assert.Equal(t, "", status.Status)
	assert.False(t, status.IsPaid())
	assert.False(t, status.IsExpired())
}
