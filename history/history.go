// Package history keeps a most-recently-used list of launch directories.
package history

import (
	"strings"
	"sync"
	"time"
)

// MaxEntries bounds the history list. The oldest entries fall off the end.
const MaxEntries = 15

// Entry is one remembered launch directory.
type Entry struct {
	Path       string    `json:"path"`
	LastUsed   time.Time `json:"last_used"`
	UsageCount int       `json:"usage_count"`
}

// Store is a bounded, deduplicated MRU list. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Store {
	return &Store{}
}

// FromEntries builds a store from previously persisted entries. Duplicate
// paths keep their first occurrence and the list is truncated to MaxEntries.
func FromEntries(entries []Entry) *Store {
	s := &Store{}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Path == "" || seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		if e.UsageCount < 1 {
			e.UsageCount = 1
		}
		s.entries = append(s.entries, e)
		if len(s.entries) == MaxEntries {
			break
		}
	}
	return s
}

// FromPaths migrates a legacy plain-path list. Order is preserved, every
// entry starts with a usage count of one and a fresh timestamp.
func FromPaths(paths []string) *Store {
	now := time.Now()
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{Path: p, LastUsed: now, UsageCount: 1})
	}
	return FromEntries(entries)
}

// RecordUse moves path to the front, bumping its usage count if it was
// already present. Blank paths are ignored. Returns a snapshot of the list.
func (s *Store) RecordUse(path string) []Entry {
	path = strings.TrimSpace(path)
	if path == "" {
		return s.List(0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.Path == path {
			e.LastUsed = time.Now()
			e.UsageCount++
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.entries = append([]Entry{e}, s.entries...)
			return s.snapshot()
		}
	}

	s.entries = append([]Entry{{Path: path, LastUsed: time.Now(), UsageCount: 1}}, s.entries...)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	return s.snapshot()
}

// List returns up to limit entries, most recent first. limit <= 0 means all.
func (s *Store) List(limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.snapshot()
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Remove drops path from the list. Reports whether it was present.
func (s *Store) Remove(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.Path == path {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
