package timeutil

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules callbacks with time.AfterFunc.
type RealScheduler struct{}

// NewRealScheduler creates a RealScheduler.
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc runs f in its own goroutine once d has elapsed.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockScheduler runs callbacks only when the test advances its clock.
// Callbacks run synchronously on the goroutine calling Advance or RunDue.
type MockScheduler struct {
	clock *MockClock

	mu    sync.Mutex
	seq   int
	tasks []*mockTask
}

type mockTask struct {
	due     time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
	owner   *MockScheduler
}

// Stop cancels the task if it has not fired.
func (t *mockTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewMockScheduler creates a scheduler driven by clock.
func NewMockScheduler(clock *MockClock) *MockScheduler {
	return &MockScheduler{clock: clock}
}

// Clock returns the scheduler's clock.
func (s *MockScheduler) Clock() *MockClock {
	return s.clock
}

// AfterFunc registers f to run once the clock reaches now+d.
func (s *MockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	task := &mockTask{
		due:   s.clock.Now().Add(d),
		seq:   s.seq,
		fn:    f,
		owner: s,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// Pending returns the number of scheduled callbacks that have not fired or been stopped.
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every callback that becomes
// due in order. Callbacks scheduled by fired callbacks also run if they fall
// within the window.
func (s *MockScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)

	for {
		task := s.nextDue(target)
		if task == nil {
			break
		}
		if task.due.After(s.clock.Now()) {
			s.clock.Set(task.due)
		}
		task.fn()
	}

	if target.After(s.clock.Now()) {
		s.clock.Set(target)
	}
}

// RunDue fires callbacks that are already due without moving the clock.
func (s *MockScheduler) RunDue() {
	s.Advance(0)
}

// nextDue pops the earliest live task due at or before target.
func (s *MockScheduler) nextDue(target time.Time) *mockTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.tasks = live

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due.Equal(s.tasks[j].due) {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due.Before(s.tasks[j].due)
	})

	if len(s.tasks) == 0 || s.tasks[0].due.After(target) {
		return nil
	}

	task := s.tasks[0]
	task.fired = true
	s.tasks = s.tasks[1:]
	return task
}

// Ensure interfaces are implemented.
var (
	_ Scheduler = (*RealScheduler)(nil)
	_ Scheduler = (*MockScheduler)(nil)
)
