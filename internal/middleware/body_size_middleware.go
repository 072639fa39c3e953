package securecheck_middleware

import (
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes fits any lookup, prediction or catalog request.
const DefaultMaxBodyBytes int64 = 64 << 10

type BodySizeMiddleware struct {
	MaxBytes int64
}

// BodySizeLimitMiddleware rejects requests whose declared Content-Length exceeds
// MaxBytes. The body of the rest is capped by chi's RequestSize, so a missing or
// false Content-Length cannot stream more than MaxBytes into a handler.
func (m *BodySizeMiddleware) BodySizeLimitMiddleware(next http.Handler) http.Handler {
	maxBytes := m.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	capped := chimiddleware.RequestSize(maxBytes)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBytes {
			http.Error(w, fmt.Sprintf(
				"Request body too large. Got: %d bytes, Max: %d bytes",
				r.ContentLength,
				maxBytes,
			), http.StatusRequestEntityTooLarge)
			return
		}

		capped.ServeHTTP(w, r)
	})
}
