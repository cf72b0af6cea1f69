// internal/app/features/admins/routes.go
package admins

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
)

// Routes mounts the admin API under the path where the caller mounts it.
// Typically: r.Mount("/api/admin", admins.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public surface: credentials or reset tokens, never session state.
	r.Post("/login", h.HandleLogin)
	r.Post("/forgot-password", h.HandleForgotPassword)
	r.Get("/reset-password/{token}", h.HandleValidateResetToken)
	r.Post("/reset-password", h.HandleResetPassword)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth(h.Issuer))

		pr.Get("/me", h.HandleMe)

		// Mutating other admin accounts requires the super admin role.
		pr.Group(func(sr chi.Router) {
			sr.Use(auth.RequireSuperAdmin(h.Admins))

			sr.With(registerRateLimit()).Post("/register", h.HandleRegister)
			sr.Get("/list", h.HandleList)
			sr.Get("/login-events", h.HandleLoginEvents)
			sr.Delete("/{id}", h.HandleDelete)
		})
	})

	return r
}

// registerRateLimit caps registration at 5 per IP per 15 minutes.
func registerRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(5, 15*time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			webjson.Error(w, http.StatusTooManyRequests, "Too many registration attempts, please try again later")
		}),
	)
}
