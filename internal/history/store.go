// internal/history/store.go
//
// In-memory recall log for generated specifications. Newest entries first,
// trimmed to a fixed capacity. Entries are immutable once added; readers
// receive deep copies so the live specification can be edited freely.

package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// DefaultCapacity bounds the recall log to the five most recent specs.
const DefaultCapacity = 5

// Store holds the most recent history entries.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []spec.HistoryEntry
	clock    func() time.Time
}

// Option customizes store construction.
type Option func(*Store)

// WithCapacity overrides the entry limit.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithClock lets tests pin entry timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		clock:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Add records a brief and its generated specification, prepending the entry
// and trimming the oldest beyond capacity. It returns the stored entry.
func (s *Store) Add(input spec.Brief, output *spec.Specification) spec.HistoryEntry {
	entry := spec.HistoryEntry{
		ID:        uuid.NewString(),
		Input:     input,
		Output:    *output.Clone(),
		Timestamp: s.clock(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]spec.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	return entry
}

// Entries returns the stored entries newest first. Specifications are deep
// copies; callers may edit them without touching the log.
func (s *Store) Entries() []spec.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]spec.HistoryEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e
		out[i].Output = *e.Output.Clone()
	}
	return out
}

// Len reports the current entry count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
