// Package session maps opaque tokens to authenticated usernames. The
// mapping is a swappable collaborator: Redis when configured, an
// in-process map otherwise. Handlers resolve the token once and pass the
// username into services explicitly; nothing below the HTTP layer reads
// session state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps opaque session tokens to authenticated usernames
type Store interface {
	// Create issues a new token bound to the username
	Create(ctx context.Context, username string) (string, error)
	// Get resolves a token to its username; returns "" when the token is
	// unknown or expired
	Get(ctx context.Context, token string) (string, error)
	// Delete invalidates a token
	Delete(ctx context.Context, token string) error
}

// MemoryStore is a process-local session store used when Redis is not
// configured, and in tests
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	username  string
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

// Create issues a new token bound to the username
func (s *MemoryStore) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token to its username
func (s *MemoryStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return "", nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", nil
	}
	return sess.username, nil
}

// Delete invalidates a token
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
