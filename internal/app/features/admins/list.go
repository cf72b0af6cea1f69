// internal/app/features/admins/list.go
package admins

import (
	"context"
	"net/http"

	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList returns every admin account, newest first. Super admin only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admins, err := h.Admins.List(ctx)
	if err != nil {
		h.Log.Error("list admins failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to list admins")
		return
	}

	views := make([]models.AdminView, 0, len(admins))
	for i := range admins {
		views = append(views, admins[i].View())
	}

	webjson.Respond(w, http.StatusOK, struct {
		Admins []models.AdminView `json:"admins"`
	}{Admins: views})
}
