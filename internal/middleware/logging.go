package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/gymlog/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			entry := log.WithFields(log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"ip":         pkg.ReadClientIP(r),
			})
			entry.Tracef(" ====> request [UA: %s]", r.Header.Get("User-Agent"))

			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			begin := time.Now()
			next.ServeHTTP(resp, r)

			entry.WithFields(log.Fields{
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
			}).Debug(" <==== response")
		})
	}
}
