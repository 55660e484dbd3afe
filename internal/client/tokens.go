package client

import (
	"sync"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
)

// TokenStore holds at most one token per role, so a single client can act
// as a guest and as an employee side by side.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[auth.Role]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[auth.Role]string)}
}

func (s *TokenStore) Set(role auth.Role, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[role] = token
}

func (s *TokenStore) Get(role auth.Role) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[role]
	return t, ok
}

func (s *TokenStore) Clear(role auth.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, role)
}

func (s *TokenStore) Roles() []auth.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]auth.Role, 0, len(s.tokens))
	for _, r := range []auth.Role{auth.RoleGuest, auth.RoleEmployee} {
		if _, ok := s.tokens[r]; ok {
			out = append(out, r)
		}
	}
	return out
}
