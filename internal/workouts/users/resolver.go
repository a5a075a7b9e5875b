package users

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// known users are remembered for an hour, after which the row is ensured again
const knownUserExpireSeconds = 3600

//go:generate mockgen -source=resolver.go -destination=repo_mock_test.go -package=users

type userRepo interface {
	Ensure(ctx context.Context, objectID string) (bool, error)
}

// Resolver maps an authenticated subject to its local User, creating the
// row the first time the subject is seen.
type Resolver struct {
	repo           userRepo
	knownUsers     *freecache.Cache
	metricsManager *metrics.Manager
}

func NewResolver(repo userRepo, cacheSizeMB int, metricsManager *metrics.Manager) *Resolver {
	return &Resolver{
		repo:           repo,
		knownUsers:     freecache.NewCache(cacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func (r *Resolver) GetOrCreate(ctx context.Context, objectID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "users.resolver.get_or_create")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if objectID == "" || utf8.RuneCountInString(objectID) > MaxObjectIDLen {
		return nil, ErrInvalidObjectID
	}

	key := []byte(objectID)
	if _, cacheErr := r.knownUsers.Get(key); cacheErr == nil {
		span.SetAttributes(attribute.Bool("cached", true))
		if r.metricsManager != nil {
			r.metricsManager.CounterUsersCacheHits.Inc()
		}
		return &User{ObjectID: objectID}, nil
	}
	if r.metricsManager != nil {
		r.metricsManager.CounterUsersCacheMisses.Inc()
	}

	created, err := r.repo.Ensure(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	if created {
		log.Debugf("new user created: %s", objectID)
		if r.metricsManager != nil {
			r.metricsManager.CounterUsersCreated.Inc()
		}
	}

	if setErr := r.knownUsers.Set(key, []byte{1}, knownUserExpireSeconds); setErr != nil {
		log.Warnf("known users cache set: %s", setErr)
	}

	return &User{ObjectID: objectID}, nil
}
