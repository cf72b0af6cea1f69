// internal/app/features/admins/me.go
package admins

import (
	"context"
	"net/http"

	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleMe returns the authenticated admin's own record. The token may
// outlive the account, so a missing record is a 404.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	principal := auth.CurrentPrincipal(r.Context())
	if principal == nil {
		webjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(principal.AdminID)
	if err != nil {
		webjson.Error(w, http.StatusNotFound, "Admin not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		webjson.Error(w, http.StatusNotFound, "Admin not found")
		return
	}

	webjson.Respond(w, http.StatusOK, struct {
		Admin models.AdminView `json:"admin"`
	}{Admin: admin.View()})
}
