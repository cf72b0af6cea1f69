package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/app/system/auth"
	"github.com/treadhub/treadhub/internal/app/system/token"
	"github.com/treadhub/treadhub/internal/testutil"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.CurrentPrincipal(r.Context()) == nil {
			t.Error("expected principal in context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	handler := auth.RequireAuth(testutil.TestIssuer())(okHandler(t))

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	handler := auth.RequireAuth(testutil.TestIssuer())(okHandler(t))

	for _, header := range []string{
		"just-a-token",
		"Basic dXNlcjpwYXNz",
		"Bearer",
	} {
		req := httptest.NewRequest("GET", "/api/admin/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got status %d, want %d", header, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := auth.RequireAuth(testutil.TestIssuer())(okHandler(t))

	// Signed with a different secret
	other := token.New("some-other-secret", 0)
	tok, err := other.Issue("656f2f3a8f1b2c3d4e5f6071", "jane@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Verification failures are forbidden, not unauthorized
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	issuer := testutil.TestIssuer()
	handler := auth.RequireAuth(issuer)(okHandler(t))

	tok, err := issuer.Issue("656f2f3a8f1b2c3d4e5f6071", "jane@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	super := fixtures.CreateSuperAdmin(ctx, "Root", "root@example.com", "sup3r-secret")
	regular := fixtures.CreateAdmin(ctx, "Jane Doe", "jane@example.com", "sup3r-secret")

	var called bool
	handler := auth.RequireSuperAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	// Super admin passes
	req := httptest.NewRequest("GET", "/api/admin/list", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &token.Principal{
		AdminID: super.ID.Hex(), Email: super.Email,
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !called {
		t.Errorf("super admin: got status %d, called=%v", rec.Code, called)
	}

	// Regular admin is forbidden
	called = false
	req = httptest.NewRequest("GET", "/api/admin/list", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &token.Principal{
		AdminID: regular.ID.Hex(), Email: regular.Email,
	}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("regular admin: got status %d, want %d", rec.Code, http.StatusForbidden)
	}
	if called {
		t.Error("handler should not run for a regular admin")
	}
}

func TestRequireSuperAdmin_NoPrincipal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminstore.New(db)

	handler := auth.RequireSuperAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a principal")
	}))

	req := httptest.NewRequest("GET", "/api/admin/list", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSuperAdmin_DeletedAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminstore.New(db)

	handler := auth.RequireSuperAdmin(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for a deleted admin")
	}))

	// Valid-shaped ID with no matching record
	req := httptest.NewRequest("GET", "/api/admin/list", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &token.Principal{
		AdminID: "656f2f3a8f1b2c3d4e5f6071", Email: "gone@example.com",
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}
