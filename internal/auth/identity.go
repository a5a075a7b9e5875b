package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Identity is what the identity provider vouches for. Subject is the
// stable external id of the user.
type Identity struct {
	Subject   string
	Name      string
	ExpiresAt time.Time
}

//go:generate mockgen -source=identity.go -destination=authenticator_mock.go -package=auth

type Authenticator interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
