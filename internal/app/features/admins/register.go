// internal/app/features/admins/register.go
package admins

import (
	"context"
	"errors"
	"net/http"

	validate "github.com/dalemusser/waffle/pantry/validate"
	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.uber.org/zap"
)

// MinPasswordLength applies to registration and password resets.
const MinPasswordLength = 8

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type adminSessionResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	Admin   models.AdminView `json:"admin"`
}

// HandleRegister creates a new admin account and signs it in immediately.
// Restricted to super admins by the route middleware.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || !validate.SimpleEmailValid(req.Email) {
		webjson.Error(w, http.StatusBadRequest, "A valid email address is required")
		return
	}
	if len(req.Password) < MinPasswordLength {
		webjson.Error(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if req.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.Create(ctx, req.Email, req.Password, req.Name, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, adminstore.ErrDuplicateEmail) {
			webjson.Error(w, http.StatusConflict, "An admin with this email already exists")
			return
		}
		h.Log.Error("register: create admin failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to register admin")
		return
	}

	tok, err := h.Issuer.Issue(admin.ID.Hex(), admin.Email)
	if err != nil {
		h.Log.Error("register: token issue failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to register admin")
		return
	}

	webjson.Respond(w, http.StatusCreated, adminSessionResponse{
		Message: "Admin registered successfully",
		Token:   tok,
		Admin:   admin.View(),
	})
}
