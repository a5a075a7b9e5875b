package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/golang-jwt/jwt/v5"
)

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Leeway   time.Duration
}

// JWTAuthenticator verifies HS256 bearer tokens signed with a shared secret.
type JWTAuthenticator struct {
	secret []byte
	opts   []jwt.ParserOption
}

var _ Authenticator = (*JWTAuthenticator)(nil)

func NewJWTAuthenticator(cfg JWTConfig) (*JWTAuthenticator, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret not set")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTAuthenticator{
		secret: []byte(cfg.Secret),
		opts:   opts,
	}, nil
}

type tokenClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (a *JWTAuthenticator) Resolve(ctx context.Context, token string) (_ *Identity, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "auth.jwt.resolve")
	defer tracing.EndSpanWithErrCheck(span, &err)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, a.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		Subject: claims.Subject,
		Name:    claims.Name,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

// SignToken issues an HS256 token for subject. Used by local tooling and
// tests; production tokens come from the identity provider.
func SignToken(cfg JWTConfig, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
