package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": w.Header().Get(RequestIDHeader),
				}).Errorf("panic serving request: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				apperr.Write(w, r, &apperr.Error{
					Kind:    apperr.KindInternal,
					Message: "Internal Server Error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
