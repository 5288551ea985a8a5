package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *MockScheduler {
	return NewMockScheduler(NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestMockScheduler_FiresOnlyWhenDue(t *testing.T) {
	s := newTestScheduler()
	fired := 0
	s.AfterFunc(2*time.Second, func() { fired++ })

	s.Advance(time.Second)
	assert.Zero(t, fired)
	assert.Equal(t, 1, s.Pending())

	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Zero(t, s.Pending())
}

func TestMockScheduler_OrderAndClock(t *testing.T) {
	s := newTestScheduler()
	start := s.Clock().Now()

	var order []string
	var at []time.Duration
	record := func(name string) func() {
		return func() {
			order = append(order, name)
			at = append(at, s.Clock().Now().Sub(start))
		}
	}

	s.AfterFunc(3*time.Second, record("c"))
	s.AfterFunc(time.Second, record("a"))
	s.AfterFunc(time.Second, record("b"))

	s.Advance(10 * time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order, "ties fire in scheduling order")
	assert.Equal(t, []time.Duration{time.Second, time.Second, 3 * time.Second}, at)
	assert.Equal(t, start.Add(10*time.Second), s.Clock().Now())
}

func TestMockScheduler_ChainedCallbacksWithinWindow(t *testing.T) {
	s := newTestScheduler()
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		s.AfterFunc(2*time.Second, tick)
	}
	s.AfterFunc(0, tick)

	s.Advance(5 * time.Second)

	// Fires at 0s, 2s and 4s; the 6s tick stays pending
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, s.Pending())
}

func TestMockScheduler_Stop(t *testing.T) {
	s := newTestScheduler()
	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to stop")

	s.Advance(time.Minute)
	assert.False(t, fired)
}

func TestMockScheduler_StopAfterFire(t *testing.T) {
	s := newTestScheduler()
	timer := s.AfterFunc(0, func() {})

	s.RunDue()

	assert.False(t, timer.Stop())
}

func TestRealScheduler_AfterFunc(t *testing.T) {
	s := NewRealScheduler()
	done := make(chan struct{})

	s.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestRealScheduler_Stop(t *testing.T) {
	s := NewRealScheduler()
	fired := make(chan struct{}, 1)

	timer := s.AfterFunc(time.Hour, func() { fired <- struct{}{} })

	assert.True(t, timer.Stop())
	assert.Empty(t, fired)
}
