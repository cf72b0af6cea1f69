package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/treadhub/treadhub/internal/app/system/normalize"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAdminWithRole creates an admin account with the given role and a
// bcrypt hash of password. MinCost keeps fixture setup fast; comparison
// works the same regardless of cost.
func (f *Fixtures) CreateAdminWithRole(ctx context.Context, name, email, password, role string) models.Admin {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}

	now := time.Now().UTC()
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        normalize.Email(email),
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = f.db.Collection("admins").InsertOne(ctx, admin)
	if err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}

	return admin
}

// CreateAdmin creates a regular admin account.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email, password string) models.Admin {
	f.t.Helper()
	return f.CreateAdminWithRole(ctx, name, email, password, models.RoleAdmin)
}

// CreateSuperAdmin creates a super admin account.
func (f *Fixtures) CreateSuperAdmin(ctx context.Context, name, email, password string) models.Admin {
	f.t.Helper()
	return f.CreateAdminWithRole(ctx, name, email, password, models.RoleSuperAdmin)
}

// CreateInquiry creates a contact inquiry with status "new".
func (f *Fixtures) CreateInquiry(ctx context.Context, name, email, subject, message string) models.ContactInquiry {
	f.t.Helper()

	inquiry := models.ContactInquiry{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     normalize.Email(email),
		Subject:   subject,
		Message:   message,
		Status:    models.InquiryNew,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("contact_inquiries").InsertOne(ctx, inquiry)
	if err != nil {
		f.t.Fatalf("failed to create test inquiry: %v", err)
	}

	return inquiry
}
