package minting

import (
	"sync"

	"github.com/defido-labs/backend/pkg/errorx"
)

// Session holds the per-visitor mint state: the attempt currently in flight
// and every token id minted during the session, in mint order. The minted set
// only grows; a new attempt never resets it.
type Session struct {
	id string

	mu             sync.Mutex
	currentAttempt string
	mintedIDs      []string
	seen           map[string]struct{}
}

func NewSession(id string) *Session {
	return &Session{
		id:   id,
		seen: make(map[string]struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Begin registers an attempt as the session's in-flight one. A second attempt
// while one is running is rejected rather than queued.
func (s *Session) Begin(attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentAttempt != "" {
		return errorx.New(errorx.TooManyRequests, "A mint is already in progress")
	}

	s.currentAttempt = attemptID
	return nil
}

// Merge appends newly minted ids to the session set, keeping first-mint order
// and dropping duplicates. The result of an attempt that is no longer current
// is discarded; Merge reports whether the ids were accepted.
func (s *Session) Merge(attemptID string, ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentAttempt != attemptID {
		return false
	}

	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}

		s.seen[id] = struct{}{}
		s.mintedIDs = append(s.mintedIDs, id)
	}

	return true
}

// End releases the in-flight slot if the given attempt still holds it.
func (s *Session) End(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentAttempt == attemptID {
		s.currentAttempt = ""
	}
}

// Discard marks the attempt as abandoned. A later Merge from it will be
// rejected, and the session accepts new attempts immediately.
func (s *Session) Discard(attemptID string) {
	s.End(attemptID)
}

// Seed preloads minted ids restored from storage. Ids already present are
// kept at their original position.
func (s *Session) Seed(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}

		s.seen[id] = struct{}{}
		s.mintedIDs = append(s.mintedIDs, id)
	}
}

// MintedIDs returns a copy of the accumulated token ids in mint order.
func (s *Session) MintedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.mintedIDs))
	copy(ids, s.mintedIDs)
	return ids
}

// SessionManager hands out one Session per session id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		session = NewSession(id)
		m.sessions[id] = session
	}

	return session
}
