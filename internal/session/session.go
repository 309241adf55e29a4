// Package session provides explicit session contexts for the embedding
// application. A Context is created by a Store, passed by value to every
// stateful call, and cleared when the client is done; there is no
// package-level singleton and no implicit current session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-match/internal/types"
)

// DefaultTTL is how long an untouched session stays valid.
const DefaultTTL = 24 * time.Hour

// Context identifies one editing session. It carries no document data
// itself; documents live in the Store under the context's ID.
type Context struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// state is the per-session mutable data held by the store.
type state struct {
	ctx      Context
	lastSeen time.Time
	resume   *types.ResumeJSON
	match    *types.MatchResult
}

// Store issues and tracks session contexts in memory. Durable persistence
// and version history belong to an external collaborator; the store only
// keeps the working documents for active sessions.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*state
	now      func() time.Time
}

// NewStore creates a Store whose sessions expire after ttl of inactivity.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*state),
		now:      time.Now,
	}
}

// Create issues a fresh session context.
func (s *Store) Create() Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := Context{
		ID:        uuid.New().String(),
		CreatedAt: s.now().UTC(),
	}
	s.sessions[ctx.ID] = &state{ctx: ctx, lastSeen: s.now()}
	return ctx
}

// Verify checks that a session ID is known and unexpired, refreshes its
// last-seen time, and returns its context.
func (s *Store) Verify(id string) (Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.lookup(id)
	if err != nil {
		return Context{}, err
	}
	st.lastSeen = s.now()
	return st.ctx, nil
}

// AttachResume stores the working resume document for a session.
func (s *Store) AttachResume(ctx Context, resume types.ResumeJSON) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.lookup(ctx.ID)
	if err != nil {
		return err
	}
	st.resume = &resume
	st.lastSeen = s.now()
	return nil
}

// AttachMatch stores the latest match result for a session.
func (s *Store) AttachMatch(ctx Context, match types.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.lookup(ctx.ID)
	if err != nil {
		return err
	}
	st.match = &match
	st.lastSeen = s.now()
	return nil
}

// Resume returns the session's working resume document, if one is attached.
func (s *Store) Resume(ctx Context) (types.ResumeJSON, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.lookup(ctx.ID)
	if err != nil {
		return types.ResumeJSON{}, false, err
	}
	if st.resume == nil {
		return types.ResumeJSON{}, false, nil
	}
	return *st.resume, true, nil
}

// Match returns the session's latest match result, if one is attached.
func (s *Store) Match(ctx Context) (types.MatchResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.lookup(ctx.ID)
	if err != nil {
		return types.MatchResult{}, false, err
	}
	if st.match == nil {
		return types.MatchResult{}, false, nil
	}
	return *st.match, true, nil
}

// Clear ends a session and drops its documents. Clearing an unknown or
// already-cleared session is a no-op.
func (s *Store) Clear(ctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, ctx.ID)
}

// Len reports how many live sessions the store holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// lookup finds a session by ID, evicting it if expired. Callers must hold mu.
func (s *Store) lookup(id string) (*state, error) {
	st, ok := s.sessions[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if s.now().Sub(st.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, &ExpiredError{ID: id}
	}
	return st, nil
}
