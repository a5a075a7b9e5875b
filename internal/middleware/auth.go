package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/workouts/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=auth.go -destination=user_resolver_mock_test.go -package=middleware_test

type userResolver interface {
	GetOrCreate(ctx context.Context, objectID string) (*users.User, error)
}

type AuthMiddlewareHandler struct {
	authenticator  auth.Authenticator
	userResolver   userResolver
	metricsManager *metrics.Manager
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(
	authenticator auth.Authenticator,
	userResolver userResolver,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator:  authenticator,
		userResolver:   userResolver,
		metricsManager: metricsManager,
		allowedPaths: map[string]bool{
			"/":         true,
			"/version":  true,
			"/db-check": true,
		},
	}
}

func (h *AuthMiddlewareHandler) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	if h.metricsManager != nil {
		h.metricsManager.CounterAuthFailures.WithLabelValues(reason).Inc()
	}
	log.Tracef("[auth middleware] [%s] unauthorized => %s: %s", reason, r.URL.Path, err)
	apperr.Write(w, r, apperr.Unauthorized("Could not validate credentials"))
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				span.SetStatus(codes.Error, "missing-auth-token")
				h.reject(w, r, "missing_token", err)
				return
			}

			identity, err := h.authenticator.Resolve(ctx, token)
			if err != nil {
				span.SetStatus(codes.Error, "invalid-token")
				span.RecordError(err)
				h.reject(w, r, "invalid_token", err)
				return
			}

			user, err := h.userResolver.GetOrCreate(ctx, identity.Subject)
			if err != nil {
				if errors.Is(err, users.ErrInvalidObjectID) {
					span.SetStatus(codes.Error, "invalid-subject")
					h.reject(w, r, "invalid_subject", err)
					return
				}
				span.SetStatus(codes.Error, "resolve-user-err")
				span.RecordError(err)
				apperr.Write(w, r, apperr.Wrap(err, "Failed to resolve user"))
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}
