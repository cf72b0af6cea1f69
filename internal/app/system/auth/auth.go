// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/app/system/token"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const principalKey contextKey = "auth_principal"

// RequireAuth returns middleware that validates the Authorization header.
// A missing or malformed header is 401; a header that parses but fails
// verification (bad signature, expired, garbage) is 403.
//
// On success the token's Principal is attached to the request context.
func RequireAuth(issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				webjson.Error(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				webjson.Error(w, http.StatusUnauthorized, "Authorization header must be in the form: Bearer <token>")
				return
			}

			principal, err := issuer.Verify(parts[1])
			if err != nil {
				webjson.Error(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin enforces super admin access. It re-fetches the admin's
// role rather than trusting the token, so a demotion takes effect without
// waiting for the token to expire. Must be used after RequireAuth.
func RequireSuperAdmin(admins *adminstore.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := CurrentPrincipal(r.Context())
			if principal == nil {
				webjson.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			id, err := primitive.ObjectIDFromHex(principal.AdminID)
			if err != nil {
				webjson.Error(w, http.StatusForbidden, "Super admin access required")
				return
			}

			admin, err := admins.GetByID(r.Context(), id)
			if err != nil || admin.Role != models.RoleSuperAdmin {
				webjson.Error(w, http.StatusForbidden, "Super admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CurrentPrincipal extracts the authenticated principal from the context.
// Returns nil if no principal is present (i.e., unauthenticated request).
func CurrentPrincipal(ctx context.Context) *token.Principal {
	if p, ok := ctx.Value(principalKey).(*token.Principal); ok {
		return p
	}
	return nil
}

// WithPrincipal attaches a principal to the context. Used by handler tests
// that bypass the middleware.
func WithPrincipal(ctx context.Context, p *token.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
