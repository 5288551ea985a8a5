package mock

import (
	"context"
	"sync"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// StatusResponse is one scripted answer of a StatusQuerier.
type StatusResponse struct {
	Status string
	Err    error
}

// StatusQuerier is a scripted implementation of domain.PaymentStatusQuerier.
// Each call consumes the next scripted response; once the script is
// exhausted the fallback response is repeated.
type StatusQuerier struct {
	script   []StatusResponse
	fallback StatusResponse
	block    chan struct{}
	called   chan string

	mu        sync.Mutex
	callCount int
	sessions  []string
}

// NewStatusQuerier creates a querier that answers "open" until scripted otherwise.
func NewStatusQuerier() *StatusQuerier {
	return &StatusQuerier{fallback: StatusResponse{Status: domain.SessionOpen}}
}

// WithResponses appends scripted responses.
func (q *StatusQuerier) WithResponses(responses ...StatusResponse) *StatusQuerier {
	q.script = append(q.script, responses...)
	return q
}

// WithFallback sets the response returned once the script is exhausted.
func (q *StatusQuerier) WithFallback(r StatusResponse) *StatusQuerier {
	q.fallback = r
	return q
}

// WithBlock makes every call wait until release is closed or the context ends.
// Each call first sends the session id on the returned channel.
func (q *StatusQuerier) WithBlock(release chan struct{}) (*StatusQuerier, <-chan string) {
	q.block = release
	q.called = make(chan string, 16)
	return q, q.called
}

// QueryStatus implements domain.PaymentStatusQuerier.QueryStatus.
// A blocked call ignores context cancellation, so the answer is delivered late.
func (q *StatusQuerier) QueryStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error) {
	q.mu.Lock()
	q.callCount++
	q.sessions = append(q.sessions, sessionID)
	resp := q.fallback
	if len(q.script) > 0 {
		resp = q.script[0]
		q.script = q.script[1:]
	}
	q.mu.Unlock()

	if q.block != nil {
		q.called <- sessionID
		<-q.block
	}

	if resp.Err != nil {
		return domain.PaymentStatus{}, resp.Err
	}
	return domain.PaymentStatus{Status: resp.Status}, nil
}

// CallCount returns the number of times QueryStatus was called.
func (q *StatusQuerier) CallCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.callCount
}

// Sessions returns the session ids queried, in call order.
func (q *StatusQuerier) Sessions() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.sessions))
	copy(out, q.sessions)
	return out
}

// Ensure StatusQuerier implements domain.PaymentStatusQuerier at compile time.
var _ domain.PaymentStatusQuerier = (*StatusQuerier)(nil)
