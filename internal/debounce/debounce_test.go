package debounce

import (
	"sync"
	"testing"
	"time"
)

// recorder collects fired ids behind a mutex.
type recorder struct {
	mu    sync.Mutex
	fired []string
}

func (r *recorder) fire(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = append(r.fired, id)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.fired))
	copy(out, r.fired)
	return out
}

func TestBurstFiresOnce(t *testing.T) {
	r := &recorder{}
	s := New(50*time.Millisecond, r.fire)
	defer s.Stop()

	// Two submissions 10ms apart, well inside the window.
	s.Submit("t1")
	time.Sleep(10 * time.Millisecond)
	s.Submit("t1")

	time.Sleep(150 * time.Millisecond)

	got := r.snapshot()
	if len(got) != 1 {
		t.Fatalf("fired %d times, want 1: %v", len(got), got)
	}
	if got[0] != "t1" {
		t.Errorf("fired %q, want t1", got[0])
	}
}

func TestCrossIDSupersede(t *testing.T) {
	r := &recorder{}
	s := New(50*time.Millisecond, r.fire)
	defer s.Stop()

	s.Submit("a")
	time.Sleep(10 * time.Millisecond)
	s.Submit("b")

	time.Sleep(150 * time.Millisecond)

	got := r.snapshot()
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("got %v, want exactly [b]", got)
	}
}

func TestSeparatedSubmissionsBothFire(t *testing.T) {
	r := &recorder{}
	s := New(20*time.Millisecond, r.fire)
	defer s.Stop()

	s.Submit("a")
	time.Sleep(80 * time.Millisecond)
	s.Submit("a")
	time.Sleep(80 * time.Millisecond)

	got := r.snapshot()
	if len(got) != 2 {
		t.Fatalf("fired %d times, want 2: %v", len(got), got)
	}
}

func TestStopCancelsPending(t *testing.T) {
	r := &recorder{}
	s := New(30*time.Millisecond, r.fire)

	s.Submit("a")
	if !s.Pending() {
		t.Fatal("expected a pending submission")
	}
	s.Stop()
	if s.Pending() {
		t.Fatal("Stop left a pending submission")
	}

	time.Sleep(100 * time.Millisecond)
	if got := r.snapshot(); len(got) != 0 {
		t.Errorf("cancelled submission fired: %v", got)
	}
}

func TestZeroWindowFiresSynchronously(t *testing.T) {
	r := &recorder{}
	s := New(0, r.fire)

	s.Submit("a")
	s.Submit("b")

	got := r.snapshot()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
}
