// internal/app/features/admins/delete.go
package admins

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type deletedAdmin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// HandleDelete removes an admin account. Super admin only; self-deletion
// is rejected so the last super admin cannot lock everyone out by accident.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	// Compare ObjectIDs, not hex strings: ObjectIDFromHex accepts
	// uppercase hex, so a case-variant of the caller's own id must
	// still hit this guard.
	if principal := auth.CurrentPrincipal(r.Context()); principal != nil {
		if principalID, perr := primitive.ObjectIDFromHex(principal.AdminID); perr == nil && principalID == id {
			webjson.Error(w, http.StatusBadRequest, "You cannot delete your own account")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		webjson.Error(w, http.StatusNotFound, "Admin not found")
		return
	}

	if _, err := h.Admins.Delete(ctx, id); err != nil {
		h.Log.Error("delete admin failed", zap.String("id", idHex), zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to delete admin")
		return
	}

	webjson.Respond(w, http.StatusOK, struct {
		Message string       `json:"message"`
		Admin   deletedAdmin `json:"admin"`
	}{
		Message: "Admin deleted successfully",
		Admin: deletedAdmin{
			ID:    admin.ID.Hex(),
			Email: admin.Email,
			Name:  admin.Name,
		},
	})
}
