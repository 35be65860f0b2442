// Package session keeps each browser session's API key, planner and plan
// state in memory. Nothing is persisted; sessions expire after a TTL or
// when the store is full.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/aaronromeo/healthplanner/internal/planner"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	// mu serializes flows so a session only ever runs one request at a time.
	mu      sync.Mutex
	planner *planner.Planner
	state   planner.State
}

// State returns a snapshot of the session's current state.
func (s *Session) State() planner.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update runs fn with the session locked and stores the state it returns.
// fn receives the session's planner; the returned state is stored even when
// fn also returns an error, since flows return the unchanged state on failure.
func (s *Session) Update(fn func(p *planner.Planner, st planner.State) (planner.State, error)) (planner.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.planner, s.state)
	s.state = next
	return next, err
}

type Store struct {
	sessions *expirable.LRU[string, *Session]
	logger   *slog.Logger
}

func NewStore(size int, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = 1024
	}
	s := &Store{logger: logger}
	s.sessions = expirable.NewLRU[string, *Session](size, func(id string, _ *Session) {
		logger.Debug("session discarded", "session", id)
	}, ttl)
	return s
}

// Create opens a session in the initial state with no plans.
func (s *Store) Create(p *planner.Planner) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		planner:   p,
		state:     planner.NewState(),
	}
	s.sessions.Add(sess.ID, sess)
	s.logger.Info("session opened", "session", sess.ID, "open_sessions", s.sessions.Len())
	return sess
}

// Get looks up a session. A hit restarts the session's TTL. The caller's id
// is only used for the lookup; the entry is re-added under the session's own
// ID so a borrowed string never becomes a map key.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Add(sess.ID, sess)
	return sess, true
}

func (s *Store) Delete(id string) bool {
	return s.sessions.Remove(id)
}

func (s *Store) Len() int {
	return s.sessions.Len()
}
