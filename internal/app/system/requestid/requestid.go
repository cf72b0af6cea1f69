// internal/app/system/requestid/requestid.go
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// Key is the context key for the request ID.
const Key contextKey = "request_id"

// Middleware assigns a unique UUID v7 to each request. If the client
// already provides an X-Request-ID header, that value is used instead.
// The ID is set on both the response header and the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), Key, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext extracts the request ID from the context. Returns an empty
// string if no request ID is present.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(Key).(string); ok {
		return id
	}
	return ""
}
