package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identity is what a session token resolves to.
type Identity struct {
	Username  string
	Role      string
	LoginTime time.Time
}

// Store maps opaque tokens to identities for the lifetime of the process.
// Nothing is persisted: a restart invalidates every session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Identity)}
}

// Create stores the identity under a fresh token and returns the token.
func (s *Store) Create(id Identity) string {
	token := uuid.NewString()
	id.LoginTime = time.Now()
	s.mu.Lock()
	s.sessions[token] = id
	s.mu.Unlock()
	return token
}

func (s *Store) Lookup(token string) (Identity, bool) {
	s.mu.RLock()
	id, ok := s.sessions[token]
	s.mu.RUnlock()
	return id, ok
}

// Revoke removes the token. Revoking an unknown token is a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
