package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=rate_limiting.go -destination=rate_limiter_mock_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits each authenticated user to allowedPerMin requests per
// minute. Anonymous requests are keyed by client ip.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedPerMin <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := routerName + ":ip:" + pkg.ReadClientIP(r)
			if user, err := auth.UserFromContext(r.Context()); err == nil {
				key = routerName + ":user:" + user.ObjectID
			}

			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				apperr.Write(w, r, apperr.Wrap(err, "Rate limit check failed"))
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.Debugf("rate limited [%s] on %s", key, r.URL.Path)

			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteJSONResponse(w, map[string]string{
				"detail": "Too many requests, retry after " + strconv.Itoa(retryAfter) + " seconds",
			}, http.StatusTooManyRequests)
		})
	}
}
