package cookbook

import (
	"sort"
	"sync"

	"github.com/devdonalds/cookbook/pkg/errors"
)

// Store is the process-wide registry of named entries. It is an explicitly
// owned object rather than a package-level singleton so tests and embedders
// can construct isolated instances.
//
// Entries are append-only: there is no update or delete. Reads may proceed
// concurrently; Put takes the write lock so a resolution mid-traversal never
// observes a partially inserted entry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]Entry),
	}
}

// Put inserts an entry if and only if no entry with the same name exists.
// Returns DUPLICATE_NAME otherwise. Names match by exact string equality;
// no normalization, no case folding.
func (s *Store) Put(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := e.EntryName()
	if _, exists := s.entries[name]; exists {
		return errors.Newf(errors.ErrCodeDuplicateName,
			"an entry named %q already exists", name)
	}
	s.entries[name] = e
	return nil
}

// Get returns the entry with the given name, if present.
func (s *Store) Get(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	return e, ok
}

// Contains reports whether an entry with the given name exists.
func (s *Store) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[name]
	return ok
}

// Names returns all entry names in lexicographic order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Clear removes all entries, returning the store to its initial state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
}
