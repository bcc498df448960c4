package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds the request context. It does not replace the response, so
// callback redirects are always delivered; work the coordinator detaches
// from the request keeps running past the deadline.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
