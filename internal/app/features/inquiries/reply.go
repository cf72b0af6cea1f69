// internal/app/features/inquiries/reply.go
package inquiries

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	inquirystore "github.com/treadhub/treadhub/internal/app/store/inquiries"
	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/htmlsanitize"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type replyRequest struct {
	Message string `json:"message"`
}

// HandleReply stores an admin's reply on an inquiry and emails it to the
// customer. Each inquiry takes exactly one reply; the first one wins.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req replyRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		webjson.Error(w, http.StatusBadRequest, "Reply message is required")
		return
	}

	principal := auth.CurrentPrincipal(r.Context())
	if principal == nil {
		webjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	adminID, err := primitive.ObjectIDFromHex(principal.AdminID)
	if err != nil {
		webjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	inq, err := h.Inquiries.GetByID(ctx, id)
	if err != nil {
		webjson.Error(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	if err := h.Inquiries.MarkReplied(ctx, id, req.Message, adminID); err != nil {
		if errors.Is(err, inquirystore.ErrAlreadyReplied) {
			webjson.Error(w, http.StatusConflict, "This inquiry has already been replied to")
			return
		}
		h.Log.Error("mark inquiry replied failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to save reply")
		return
	}

	// The customer's original message is untrusted input; sanitize it
	// before quoting it back in HTML.
	email := mailer.BuildReplyEmail(mailer.ReplyEmailData{
		SiteName:     h.SiteName,
		CustomerName: inq.Name,
		Subject:      inq.Subject,
		ReplyText:    req.Message,
		OriginalHTML: htmlsanitize.SanitizeToHTML(inq.Message),
		OriginalText: inq.Message,
	})
	email.To = inq.Email

	if err := h.Mail.Send(email); err != nil {
		// The reply is stored either way; the admin can follow up manually.
		h.Log.Error("reply email send failed",
			zap.String("inquiry_id", id.Hex()), zap.Error(err))
		webjson.Error(w, http.StatusBadGateway, "Reply saved but the email could not be sent")
		return
	}

	webjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Reply sent successfully",
	})
}
