package session

import (
	"sync"

	"github.com/gen01-ai/interview-assistant/internal/chat"
)

// Store keeps per-user conversation memory for the process lifetime.
// Sessions are never evicted or expired; history is volatile and lost on
// restart. Unbounded growth is an accepted trade-off of this design.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is one user's conversation plus the lock that serializes
// mutation of it. Two simultaneous requests for the same user must not
// interleave their appends around the model call, so the whole
// append-call-append sequence runs under this lock.
type Session struct {
	mu    sync.Mutex
	turns []chat.Turn
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Acquire returns the user's session with its lock held. Callers must
// call Release on every exit path. An unseen user gets a fresh copy of
// the seed conversation; the template itself is never mutated.
func (s *Store) Acquire(userID string) *Session {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{turns: chat.SeedConversation()}
		s.sessions[userID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// Snapshot returns a copy of a user's history, or false if the user has
// never been seen.
func (s *Store) Snapshot(userID string) ([]chat.Turn, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	copied := make([]chat.Turn, len(sess.turns))
	copy(copied, sess.turns)
	return copied, true
}

// Release unlocks the session acquired from the store.
func (s *Session) Release() {
	s.mu.Unlock()
}

// Append adds one turn to the history. The session lock must be held.
func (s *Session) Append(turn chat.Turn) {
	s.turns = append(s.turns, turn)
}

// Turns returns a copy of the history safe to hand to the model client.
// The session lock must be held.
func (s *Session) Turns() []chat.Turn {
	copied := make([]chat.Turn, len(s.turns))
	copy(copied, s.turns)
	return copied
}

// Len reports the current history length. The session lock must be held.
func (s *Session) Len() int {
	return len(s.turns)
}
