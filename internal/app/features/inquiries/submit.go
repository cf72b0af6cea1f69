// internal/app/features/inquiries/submit.go
package inquiries

import (
	"context"
	"net/http"

	validate "github.com/dalemusser/waffle/pantry/validate"
	"github.com/treadhub/treadhub/internal/app/system/htmlsanitize"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

// MaxMessageLength bounds contact form messages.
const MaxMessageLength = 5000

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// HandleSubmit accepts a contact form submission from the public site.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Email == "" || !validate.SimpleEmailValid(req.Email) {
		webjson.Error(w, http.StatusBadRequest, "A valid email address is required")
		return
	}
	if req.Subject == "" {
		webjson.Error(w, http.StatusBadRequest, "Subject is required")
		return
	}
	// The subject is echoed into the reply email's subject line, where
	// there is no sanitization pass; keep markup out of it entirely.
	if !htmlsanitize.IsPlainText(req.Subject) {
		webjson.Error(w, http.StatusBadRequest, "Subject must not contain HTML")
		return
	}
	if req.Message == "" {
		webjson.Error(w, http.StatusBadRequest, "Message is required")
		return
	}
	if len(req.Message) > MaxMessageLength {
		webjson.Error(w, http.StatusBadRequest, "Message is too long")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	inq, err := h.Inquiries.Create(ctx, req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		h.Log.Error("contact: create inquiry failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to submit your message")
		return
	}

	webjson.Respond(w, http.StatusCreated, map[string]string{
		"message": "Thank you for contacting us. We'll get back to you soon.",
		"id":      inq.ID.Hex(),
	})
}
