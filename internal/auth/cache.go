package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

const verifiedTokenKeyPrefix = "gymlog-verified-token||"

// CachedAuthenticator remembers verified tokens in redis so repeated
// requests with the same token skip verification. Tokens are stored hashed.
type CachedAuthenticator struct {
	next           Authenticator
	redisClient    *redis.Client
	ttl            time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

var _ Authenticator = (*CachedAuthenticator)(nil)

func NewCachedAuthenticator(
	next Authenticator,
	redisClient *redis.Client,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *CachedAuthenticator {
	return &CachedAuthenticator{
		next:           next,
		redisClient:    redisClient,
		ttl:            ttl,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func verifiedTokenKey(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return verifiedTokenKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *CachedAuthenticator) Resolve(ctx context.Context, token string) (_ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.cache.resolve")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if token == "" {
		return nil, ErrMissingToken
	}

	key := verifiedTokenKey(token)
	subject, err := c.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil && subject != "":
		if c.metricsManager != nil {
			c.metricsManager.CounterAuthCacheHits.Inc()
		}
		return &Identity{Subject: subject}, nil
	case err != nil && !errors.Is(err, redis.Nil):
		// cache is best effort, fall through to verification
		log.Warnf("verified token cache get: %s", err)
	}

	identity, err := c.next.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	ttl := c.ttl
	if !identity.ExpiresAt.IsZero() {
		if untilExp := identity.ExpiresAt.Sub(c.now()); untilExp < ttl {
			ttl = untilExp
		}
	}
	if ttl <= 0 {
		return identity, nil
	}

	if setErr := c.redisClient.Set(ctx, key, identity.Subject, ttl).Err(); setErr != nil {
		log.Warnf("verified token cache set: %s", setErr)
	}

	return identity, nil
}
