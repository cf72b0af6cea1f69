package inquiries_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/treadhub/treadhub/internal/app/features/inquiries"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/domain/models"
	"github.com/treadhub/treadhub/internal/testutil"
	"go.uber.org/zap"
)

type mailRecorder struct {
	sent []mailer.Email
	fail bool
}

func (m *mailRecorder) Send(e mailer.Email) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, e)
	return nil
}

func newTestHandler(t *testing.T) (*inquiries.Handler, *testutil.Fixtures, *mailRecorder) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mail := &mailRecorder{}
	h := inquiries.NewHandler(db, testutil.TestIssuer(), mail, "TreadHub", zap.NewNop())
	return h, testutil.NewFixtures(t, db), mail
}

func TestHandleSubmit(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"name":    "Bob Smith",
		"email":   "Bob@Example.COM",
		"phone":   "555-0100",
		"subject": "Wrong drum size",
		"message": "The wheel drums I ordered don't fit my trailer axle.",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	stored, err := h.Inquiries.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 inquiry, got %d", len(stored))
	}
	if stored[0].Email != "bob@example.com" {
		t.Errorf("email: got %q, want %q", stored[0].Email, "bob@example.com")
	}
	if stored[0].Status != models.InquiryNew {
		t.Errorf("status: got %q, want %q", stored[0].Status, models.InquiryNew)
	}
}

func TestHandleSubmit_Validation(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := inquiries.Routes(h)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "bob@example.com", "subject": "S", "message": "M"}},
		{"bad email", map[string]string{"name": "Bob", "email": "not-an-email", "subject": "S", "message": "M"}},
		{"missing subject", map[string]string{"name": "Bob", "email": "bob@example.com", "message": "M"}},
		{"html subject", map[string]string{"name": "Bob", "email": "bob@example.com", "subject": "<b>Win</b>", "message": "M"}},
		{"missing message", map[string]string{"name": "Bob", "email": "bob@example.com", "subject": "S"}},
	}

	for _, tc := range cases {
		req := testutil.NewJSONRequest(t, "POST", "/", tc.body)
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got status %d, want %d", tc.name, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleList_RequiresAuth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := inquiries.Routes(h)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestHandleList(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")
	fixtures.CreateInquiry(ctx, "Bob", "bob@example.com", "Subject A", "Message A")
	fixtures.CreateInquiry(ctx, "Carol", "carol@example.com", "Subject B", "Message B")

	req := testutil.NewAuthenticatedRequest("GET", "/", h.Issuer, admin)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Inquiries []models.ContactInquiry `json:"inquiries"`
		Counts    struct {
			New     int64 `json:"new"`
			Replied int64 `json:"replied"`
		} `json:"counts"`
	}
	rec.DecodeJSON(t, &resp)
	if len(resp.Inquiries) != 2 {
		t.Errorf("expected 2 inquiries, got %d", len(resp.Inquiries))
	}
	if resp.Counts.New != 2 || resp.Counts.Replied != 0 {
		t.Errorf("counts: got new=%d replied=%d, want new=2 replied=0", resp.Counts.New, resp.Counts.Replied)
	}
}

func TestHandleGet(t *testing.T) {
	h, fixtures, _ := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")
	inq := fixtures.CreateInquiry(ctx, "Bob", "bob@example.com", "Fit question", "Will these fit?")

	req := testutil.NewAuthenticatedRequest("GET", "/"+inq.ID.Hex(), h.Issuer, admin)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Inquiry models.ContactInquiry `json:"inquiry"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Inquiry.ID != inq.ID {
		t.Errorf("id: got %v, want %v", resp.Inquiry.ID, inq.ID)
	}

	// Unknown id
	req = testutil.NewAuthenticatedRequest("GET", "/656f2f3a8f1b2c3d4e5f6071", h.Issuer, admin)
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleReply(t *testing.T) {
	h, fixtures, mail := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")
	inq := fixtures.CreateInquiry(ctx, "Bob", "bob@example.com", "Fit question",
		"Will these fit? <script>alert(1)</script>")

	req := testutil.NewJSONRequest(t, "POST", "/"+inq.ID.Hex()+"/reply",
		map[string]string{"message": "Yes, they fit all standard axles."})
	req = testutil.Authorize(req, h.Issuer, admin)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	// The inquiry is marked replied with the replier recorded.
	updated, err := h.Inquiries.GetByID(ctx, inq.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Status != models.InquiryReplied {
		t.Errorf("status: got %q, want %q", updated.Status, models.InquiryReplied)
	}
	if updated.RepliedBy == nil || *updated.RepliedBy != admin.ID {
		t.Errorf("replied_by: got %v, want %v", updated.RepliedBy, admin.ID)
	}

	// The customer got the reply, with the quoted original sanitized.
	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mail.sent))
	}
	sent := mail.sent[0]
	if sent.To != "bob@example.com" {
		t.Errorf("To: got %q", sent.To)
	}
	if !strings.Contains(sent.Subject, "Fit question") {
		t.Errorf("Subject: got %q", sent.Subject)
	}
	if strings.Contains(sent.HTMLBody, "<script>") {
		t.Error("quoted original was not sanitized")
	}
}

func TestHandleReply_AlreadyReplied(t *testing.T) {
	h, fixtures, mail := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")
	inq := fixtures.CreateInquiry(ctx, "Bob", "bob@example.com", "Fit question", "Will these fit?")

	req := testutil.NewJSONRequest(t, "POST", "/"+inq.ID.Hex()+"/reply",
		map[string]string{"message": "First reply"})
	req = testutil.Authorize(req, h.Issuer, admin)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewJSONRequest(t, "POST", "/"+inq.ID.Hex()+"/reply",
		map[string]string{"message": "Second reply"})
	req = testutil.Authorize(req, h.Issuer, admin)
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusConflict)

	// Only the first reply produced an email.
	if len(mail.sent) != 1 {
		t.Errorf("expected 1 email, got %d", len(mail.sent))
	}
}

func TestHandleReply_SendFailure(t *testing.T) {
	h, fixtures, mail := newTestHandler(t)
	router := inquiries.Routes(h)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")
	inq := fixtures.CreateInquiry(ctx, "Bob", "bob@example.com", "Fit question", "Will these fit?")
	mail.fail = true

	req := testutil.NewJSONRequest(t, "POST", "/"+inq.ID.Hex()+"/reply",
		map[string]string{"message": "Yes."})
	req = testutil.Authorize(req, h.Issuer, admin)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadGateway)

	// The reply itself is stored; only the email failed.
	updated, err := h.Inquiries.GetByID(ctx, inq.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Status != models.InquiryReplied {
		t.Errorf("status: got %q, want %q", updated.Status, models.InquiryReplied)
	}
}
