// internal/app/features/inquiries/inbox.go
package inquiries

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/treadhub/treadhub/internal/app/system/timeouts"
	"github.com/treadhub/treadhub/internal/app/system/webjson"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleList returns inquiries newest first. ?status=new|replied filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", models.InquiryNew, models.InquiryReplied:
		// ok
	default:
		webjson.Error(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	inquiries, err := h.Inquiries.List(ctx, status)
	if err != nil {
		h.Log.Error("list inquiries failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}

	// Inbox badge counts, independent of the active filter.
	newCount, err := h.Inquiries.CountByStatus(ctx, models.InquiryNew)
	if err != nil {
		h.Log.Error("count inquiries failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}
	repliedCount, err := h.Inquiries.CountByStatus(ctx, models.InquiryReplied)
	if err != nil {
		h.Log.Error("count inquiries failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}

	webjson.Respond(w, http.StatusOK, struct {
		Inquiries []models.ContactInquiry `json:"inquiries"`
		Counts    inquiryCounts           `json:"counts"`
	}{Inquiries: inquiries, Counts: inquiryCounts{New: newCount, Replied: repliedCount}})
}

type inquiryCounts struct {
	New     int64 `json:"new"`
	Replied int64 `json:"replied"`
}

// HandleGet returns one inquiry.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	inq, err := h.Inquiries.GetByID(ctx, id)
	if err != nil {
		webjson.Error(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	webjson.Respond(w, http.StatusOK, struct {
		Inquiry *models.ContactInquiry `json:"inquiry"`
	}{Inquiry: inq})
}
