// Package debounce provides a single-slot delayed call scheduler.
//
// The scheduler holds at most one pending call at a time, keyed
// globally rather than per id: submitting a new id cancels any pending
// one and re-arms the timer. Once the quiet window elapses without a
// new submission the last id fires exactly once.
package debounce

import (
	"sync"
	"time"
)

// Scheduler collapses bursts of submissions into one fired call per
// quiet window.
type Scheduler struct {
	mu     sync.Mutex
	window time.Duration
	fire   func(id string)
	timer  *time.Timer
}

// New returns a scheduler that invokes fire after window of quiet. A
// zero or negative window makes Submit fire synchronously.
func New(window time.Duration, fire func(id string)) *Scheduler {
	return &Scheduler{window: window, fire: fire}
}

// Submit schedules id, superseding any pending submission.
func (s *Scheduler) Submit(id string) {
	if s.window <= 0 {
		s.fire(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		s.fire(id)
	})
}

// Stop cancels any pending submission. It does not wait for a call
// already in flight.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a submission is waiting to fire.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
