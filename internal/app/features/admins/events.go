// internal/app/features/admins/events.go
package admins

import (
	"context"
	"net/http"
	"strconv"

	"github.com/treadhub/treadhub/internal/app/system/normalize"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.uber.org/zap"
)

// MaxLoginEventLimit caps a single audit page.
const MaxLoginEventLimit = 200

// HandleLoginEvents returns the login audit trail, newest first. Super
// admin only. ?email= narrows to one account; ?limit= caps the page
// (default 50, max 200).
func (h *Handler) HandleLoginEvents(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			webjson.Error(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	if limit > MaxLoginEventLimit {
		limit = MaxLoginEventLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		events []models.LoginEvent
		err    error
	)
	if email := r.URL.Query().Get("email"); email != "" {
		events, err = h.Logins.RecentByEmail(ctx, normalize.Email(email), limit)
	} else {
		events, err = h.Logins.Recent(ctx, limit)
	}
	if err != nil {
		h.Log.Error("list login events failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to list login events")
		return
	}

	if events == nil {
		events = []models.LoginEvent{}
	}

	webjson.Respond(w, http.StatusOK, struct {
		Events []models.LoginEvent `json:"events"`
	}{Events: events})
}
