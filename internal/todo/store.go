package todo

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// SchemaVersion is the version written in snapshots.
const SchemaVersion = 1

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Store owns the ordered task list.
type Store struct {
	mu        sync.RWMutex
	tasks     []Task
	index     map[string]int // task ID -> position in tasks
	newID     IDGenerator
	observers map[int]func(Event)
	nextObs   int
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		index:     make(map[string]int),
		newID:     UUIDs(),
		observers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new incomplete task and returns it.
// The title is not validated; see ValidateTitle.
func (s *Store) Add(title, description string) Task {
	s.mu.Lock()
	id := s.newID()
	// A generator that repeats itself must not break ID uniqueness.
	for {
		if _, exists := s.index[id]; !exists {
			break
		}
		id = s.newID()
	}
	task := Task{
		ID:          id,
		Title:       title,
		Description: description,
		IsComplete:  false,
	}
	s.index[id] = len(s.tasks)
	s.tasks = append(s.tasks, task)
	observers := s.observerList()
	s.mu.Unlock()

	notify(observers, Event{Kind: EventAdded, Task: task})
	return task
}

// ToggleComplete flips the completion state of the task with the given ID.
// It reports whether a task was found. An unknown ID leaves the list
// unchanged and notifies nobody.
func (s *Store) ToggleComplete(id string) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.tasks[i].IsComplete = !s.tasks[i].IsComplete
	task := s.tasks[i]
	observers := s.observerList()
	s.mu.Unlock()

	notify(observers, Event{Kind: EventToggled, Task: task})
	return true
}

// List returns a copy of the tasks in insertion order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns a task by ID.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Counts returns the number of open and completed tasks.
func (s *Store) Counts() (open, done int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.IsComplete {
			done++
		} else {
			open++
		}
	}
	return open, done
}

// Subscribe registers fn to be called after every applied mutation.
// The returned function removes the observer; it is safe to call more than once.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// observerList returns observers in registration order. Caller holds s.mu.
func (s *Store) observerList() []func(Event) {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]func(Event), 0, len(s.observers))
	for id := 0; id < s.nextObs; id++ {
		if fn, ok := s.observers[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(observers []func(Event), ev Event) {
	for _, fn := range observers {
		fn(ev)
	}
}

// Snapshot is the JSON form of the task list.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version"`
	Tasks         []Task `json:"tasks"`
}

// Snapshot returns a point-in-time copy of the task list.
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{
		SchemaVersion: SchemaVersion,
		Tasks:         s.List(),
	}
}

// Write writes the snapshot with 2-space indentation and a trailing newline.
func (snap *Snapshot) Write(w io.Writer) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
