// Package list owns the canonical task list and its persistence
// round-trip: load once at startup, write the full list back after
// every mutation.
package list

import (
	"sync"
	"time"

	"github.com/Chriiiiiss/to-do-lit/internal/debounce"
	"github.com/Chriiiiiss/to-do-lit/internal/logging"
	"github.com/Chriiiiiss/to-do-lit/internal/store"
	"github.com/Chriiiiiss/to-do-lit/internal/task"
)

// DefaultWindow is the toggle debounce quiet window.
const DefaultWindow = 300 * time.Millisecond

// Options configures a Service.
type Options struct {
	// Store is the blob persistence port. Required.
	Store store.Blob

	// Key is the blob key. Defaults to store.TasksKey.
	Key string

	// IDGen generates task ids. Defaults to task.NewID.
	IDGen task.IDGen

	// Window is the toggle debounce quiet window. Defaults to
	// DefaultWindow; zero means "use the default", negative disables
	// debouncing (ToggleRequest applies immediately).
	Window time.Duration

	// Logger records applied mutations. May be nil.
	Logger *logging.SessionLogger

	// OnToggle is invoked after a debounced toggle lands, with the
	// persistence error if any. May be nil. Called off the submitting
	// goroutine.
	OnToggle func(id string, err error)
}

// Service is the single-writer owner of the canonical task list. All
// mutations go through it; each applied mutation persists the full
// list before returning.
type Service struct {
	mu    sync.Mutex
	tasks task.List

	store    store.Blob
	key      string
	gen      task.IDGen
	logger   *logging.SessionLogger
	deb      *debounce.Scheduler
	onToggle func(id string, err error)
}

// New builds a Service and loads the stored list once. A missing,
// empty, or malformed blob loads as an empty list; load never fails.
func New(opts Options) *Service {
	key := opts.Key
	if key == "" {
		key = store.TasksKey
	}
	gen := opts.IDGen
	if gen == nil {
		gen = task.NewID
	}
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}
	if window < 0 {
		window = 0
	}

	s := &Service{
		store:    opts.Store,
		key:      key,
		gen:      gen,
		logger:   opts.Logger,
		onToggle: opts.OnToggle,
	}
	s.deb = debounce.New(window, s.applyToggle)
	s.load()
	return s
}

// load reads the stored blob into memory. Read errors degrade to an
// empty list like absent data does.
func (s *Service) load() {
	blob, ok, err := s.store.Get(s.key)
	if err != nil || !ok {
		s.tasks = task.List{}
		return
	}
	s.tasks = task.Decode([]byte(blob), s.gen)
}

// Add appends a new task. A whitespace-only title is rejected with no
// effect. A persistence error is returned alongside the task that is
// now in memory.
func (s *Service) Add(title string) (task.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := task.Add(s.tasks, title, s.gen())
	if !ok {
		return task.Task{}, false, nil
	}
	s.tasks = next
	added := next[len(next)-1]
	err := s.persist()
	s.logger.Log("add", added.ID, added.Title, len(s.tasks))
	return added, true, err
}

// ToggleRequest routes a toggle through the debounce gate: requests
// landing inside the quiet window supersede each other, and only the
// last id flips once the window lapses.
func (s *Service) ToggleRequest(id string) {
	s.deb.Submit(id)
}

// ToggleNow flips a task immediately, bypassing the debounce gate.
// Intended for one-shot callers with no event loop to wait on. An
// unknown id is a silent no-op.
func (s *Service) ToggleNow(id string) error {
	return s.toggle(id)
}

// SetOnToggle replaces the debounced-toggle callback. The presenter
// installs its repaint hook here once its event loop exists.
func (s *Service) SetOnToggle(fn func(id string, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onToggle = fn
}

func (s *Service) applyToggle(id string) {
	err := s.toggle(id)
	s.mu.Lock()
	fn := s.onToggle
	s.mu.Unlock()
	if fn != nil {
		fn(id, err)
	}
}

func (s *Service) toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := task.Find(s.tasks, id); !ok {
		return nil
	}
	s.tasks = task.Toggle(s.tasks, id)
	err := s.persist()
	s.logger.Log("toggle", id, "", len(s.tasks))
	return err
}

// Delete removes a task. An unknown id is a silent no-op.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := task.Find(s.tasks, id); !ok {
		return nil
	}
	s.tasks = task.Delete(s.tasks, id)
	err := s.persist()
	s.logger.Log("delete", id, "", len(s.tasks))
	return err
}

// Tasks returns a copy of the canonical list.
func (s *Service) Tasks() task.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(task.List, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Display returns the derived rendering order.
func (s *Service) Display() task.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.DisplayOrder(s.tasks)
}

// Stop cancels any pending debounced toggle.
func (s *Service) Stop() {
	s.deb.Stop()
}

func (s *Service) persist() error {
	data, err := task.Encode(s.tasks)
	if err != nil {
		return err
	}
	return s.store.Set(s.key, string(data))
}
