// internal/app/features/admins/passwordreset.go
package admins

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

// GenericResetMessage is returned by forgot-password regardless of whether
// the account exists, is inside its cooldown, or the email failed to send.
// Varying it would let a caller probe which addresses have accounts.
const GenericResetMessage = "If an account with that email exists, a password reset link has been sent"

const invalidTokenMessage = "Invalid or expired reset token"

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetValidityResponse struct {
	Valid   bool   `json:"valid"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// HandleForgotPassword starts a password reset. Every outcome past basic
// validation answers 200 with GenericResetMessage.
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		webjson.Error(w, http.StatusBadRequest, "Email is required")
		return
	}

	// Abuse guard on top of the per-account cooldown. A tripped limiter
	// is indistinguishable from a successful request.
	if allowed, reason := h.ResetLimiter.Check(r, req.Email); !allowed {
		h.Log.Warn("forgot-password rate limited", zap.String("reason", reason))
		webjson.Respond(w, http.StatusOK, map[string]string{"message": GenericResetMessage})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		webjson.Respond(w, http.StatusOK, map[string]string{"message": GenericResetMessage})
		return
	}

	raw, err := h.Admins.RequestReset(ctx, admin)
	if err != nil {
		// Cooldown and unexpected errors alike collapse into the generic
		// message; the latter still gets logged server-side.
		if err != adminstore.ErrResetCooldown {
			h.Log.Error("forgot-password: request reset failed", zap.Error(err))
		}
		webjson.Respond(w, http.StatusOK, map[string]string{"message": GenericResetMessage})
		return
	}

	email := mailer.BuildResetEmail(mailer.ResetEmailData{
		SiteName:  h.SiteName,
		AdminName: admin.Name,
		ResetLink: h.AdminClientURL + "/reset-password/" + raw,
		ExpiresIn: "1 hour",
	})
	email.To = admin.Email

	if err := h.Mail.Send(email); err != nil {
		// An unsendable token is useless; clear it so the cooldown does
		// not pin the account to a link nobody received.
		h.Log.Error("forgot-password: send failed", zap.Error(err))
		if clearErr := h.Admins.ClearResetToken(ctx, admin.ID); clearErr != nil {
			h.Log.Error("forgot-password: clear token failed", zap.Error(clearErr))
		}
	}

	webjson.Respond(w, http.StatusOK, map[string]string{"message": GenericResetMessage})
}

// HandleValidateResetToken answers whether a reset link is still usable,
// so the frontend can show the form or an error without submitting.
// Each check consumes one of the token's validation attempts.
func (h *Handler) HandleValidateResetToken(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "token")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.FindByResetToken(ctx, raw)
	if err != nil {
		webjson.Respond(w, http.StatusBadRequest, resetValidityResponse{
			Valid:   false,
			Message: invalidTokenMessage,
		})
		return
	}

	if err := h.Admins.ValidateResetToken(ctx, admin, raw); err != nil {
		webjson.Respond(w, http.StatusBadRequest, resetValidityResponse{
			Valid:   false,
			Message: invalidTokenMessage,
		})
		return
	}

	webjson.Respond(w, http.StatusOK, resetValidityResponse{
		Valid: true,
		Email: admin.Email,
	})
}

// HandleResetPassword consumes a reset token and sets the new password.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		webjson.Error(w, http.StatusBadRequest, invalidTokenMessage)
		return
	}
	if len(req.NewPassword) < MinPasswordLength {
		webjson.Error(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.FindByResetToken(ctx, req.Token)
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, invalidTokenMessage)
		return
	}

	if err := h.Admins.ConsumeResetToken(ctx, admin, req.Token, req.NewPassword); err != nil {
		webjson.Error(w, http.StatusBadRequest, invalidTokenMessage)
		return
	}

	// A completed reset forgives earlier forgot-password requests for
	// this account; only the fixed per-account cooldown remains.
	h.ResetLimiter.ResetEmail(admin.Email)

	webjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Password has been reset successfully",
	})
}
