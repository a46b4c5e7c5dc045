package session

import (
	"sync"
	"time"
)

// DefaultMaxSessions bounds the in-memory session store.
const DefaultMaxSessions = 1024

type record struct {
	state    State
	lastSeen time.Time
}

// Store is an in-memory session store keyed by session ID. When the store
// grows past its cap, the least recently seen session is evicted.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*record
	maxEntries int
	now        func() time.Time
}

// NewStore creates a store holding at most maxEntries sessions. Non-positive
// values fall back to DefaultMaxSessions.
func NewStore(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxSessions
	}
	return &Store{
		sessions:   make(map[string]*record),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns a copy of the session's state, zero-valued for unknown IDs.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[id]
	if !ok {
		return State{}
	}
	rec.lastSeen = s.now()
	return rec.state
}

// Put stores the session's state, evicting the least recently seen session
// if the cap would be exceeded.
func (s *Store) Put(id string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.sessions[id]; ok {
		rec.state = state
		rec.lastSeen = s.now()
		return
	}

	if len(s.sessions) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.sessions[id] = &record{state: state, lastSeen: s.now()}
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	first := true
	for id, rec := range s.sessions {
		if first || rec.lastSeen.Before(oldest) {
			oldestID = id
			oldest = rec.lastSeen
			first = false
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
