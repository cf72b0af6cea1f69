package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/treadhub/treadhub/internal/app/system/token"
	"github.com/treadhub/treadhub/internal/domain/models"
)

// TestJWTSecret is the signing secret used by test issuers.
const TestJWTSecret = "test-jwt-secret-for-testing-only"

// TestIssuer returns a token issuer signed with TestJWTSecret and the
// default session lifetime.
func TestIssuer() *token.Issuer {
	return token.New(TestJWTSecret, 0)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates a request with body marshaled as JSON and the
// Content-Type header set.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Authorize adds a Bearer token for the given admin to the request.
func Authorize(r *http.Request, issuer *token.Issuer, admin models.Admin) *http.Request {
	tok, err := issuer.Issue(admin.ID.Hex(), admin.Email)
	if err != nil {
		panic("failed to issue test token: " + err.Error())
	}
	r.Header.Set("Authorization", "Bearer "+tok)
	return r
}

// NewAuthenticatedRequest creates a request carrying a Bearer token for admin.
func NewAuthenticatedRequest(method, target string, issuer *token.Issuer, admin models.Admin) *http.Request {
	return Authorize(httptest.NewRequest(method, target, nil), issuer, admin)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q: %s", expected, r.Body.String())
	}
}

// DecodeJSON unmarshals the response body into dst.
func (r *ResponseRecorder) DecodeJSON(t *testing.T, dst any) {
	t.Helper()
	if err := json.Unmarshal(r.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response body %q: %v", r.Body.String(), err)
	}
}
