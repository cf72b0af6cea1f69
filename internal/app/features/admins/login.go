// internal/app/features/admins/login.go
package admins

import (
	"context"
	"net/http"

	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates an admin and issues a session token.
//
// Unknown email and wrong password both answer 401 "Invalid credentials"
// so the response never reveals whether an account exists. Every attempt,
// successful or not, is written to the login audit trail first.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		webjson.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if err := h.Logins.RecordFailure(ctx, r, req.Email, "account not found", nil); err != nil {
			h.Log.Error("login: record failure event", zap.Error(err))
		}
		webjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !h.Admins.ComparePassword(admin, req.Password) {
		if err := h.Logins.RecordFailure(ctx, r, admin.Email, "wrong password", admin); err != nil {
			h.Log.Error("login: record failure event", zap.Error(err))
		}
		webjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.Logins.RecordSuccess(ctx, r, admin); err != nil {
		// The audit write is best-effort; a valid login still proceeds.
		h.Log.Error("login: record success event", zap.Error(err))
	}

	tok, err := h.Issuer.Issue(admin.ID.Hex(), admin.Email)
	if err != nil {
		h.Log.Error("login: token issue failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	webjson.Respond(w, http.StatusOK, adminSessionResponse{
		Message: "Login successful",
		Token:   tok,
		Admin:   admin.View(),
	})
}
