package auth

import (
	"context"
	"sync"
)

// StaticAuthenticator resolves tokens from a fixed token -> subject table.
// Used in tests and local development.
type StaticAuthenticator struct {
	mu     sync.RWMutex
	tokens map[string]string
}

var _ Authenticator = (*StaticAuthenticator)(nil)

func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{
		tokens: map[string]string{},
	}
}

func (s *StaticAuthenticator) Add(token, subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = subject
}

func (s *StaticAuthenticator) Resolve(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &Identity{Subject: subject}, nil
}
