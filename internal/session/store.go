package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store is a process-wide, in-memory session store keyed by the provider's
// call SID. State is ephemeral; nothing survives a restart and there is no
// explicit cleanup beyond a new call overwriting its own slot.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create resets any prior state for callSid and installs a fresh session
// with a newly generated session ID and the two-turn conversation template.
func (s *Store) Create(callSid string) *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		CallSid: callSid,
		Turns:   NewTranscript(),
	}

	s.mu.Lock()
	s.sessions[callSid] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for callSid, or nil if none exists.
func (s *Store) Get(callSid string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[callSid]
}

// Append adds one turn to the session for callSid, in invocation order.
// It reports whether the session existed.
func (s *Store) Append(callSid string, turn Turn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[callSid]
	if !ok {
		return false
	}
	sess.Turns = append(sess.Turns, turn)
	return true
}
