package middleware

import (
	"io"
	"net/http"
)

// LimitAndDrainBody wraps the request body with a size limit and, once the
// handler returns, discards whatever is left of it (bounded by the same
// limit) and closes it.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := http.MaxBytesReader(w, r.Body, maxBytes)
			r.Body = body
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, body)
			_ = body.Close()
		})
	}
}
