// internal/app/features/inquiries/routes.go
package inquiries

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
)

// Routes mounts the contact API under the path where the caller mounts it.
// Typically: r.Mount("/api/contact", inquiries.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public contact form
	r.With(submitRateLimit()).Post("/", h.HandleSubmit)

	// Admin inbox
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth(h.Issuer))

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
		pr.Post("/{id}/reply", h.HandleReply)
	})

	return r
}

// submitRateLimit caps contact form submissions at 10 per IP per hour.
func submitRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(10, time.Hour,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			webjson.Error(w, http.StatusTooManyRequests, "Too many messages, please try again later")
		}),
	)
}
