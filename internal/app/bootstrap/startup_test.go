package bootstrap

import (
	"testing"

	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/domain/models"
	"github.com/treadhub/treadhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureSuperAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	err := ensureSuperAdmin(ctx, deps, "boss@treadhub.com", "bootstrap-pass-1", "Boss", testLogger())
	if err != nil {
		t.Fatalf("ensureSuperAdmin failed: %v", err)
	}

	var a models.Admin
	err = db.Collection("admins").FindOne(ctx, bson.M{"email": "boss@treadhub.com"}).Decode(&a)
	if err != nil {
		t.Fatalf("failed to find created admin: %v", err)
	}

	if a.Role != models.RoleSuperAdmin {
		t.Errorf("expected role %q, got %q", models.RoleSuperAdmin, a.Role)
	}
	if a.Name != "Boss" {
		t.Errorf("expected name %q, got %q", "Boss", a.Name)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("bootstrap-pass-1")) != nil {
		t.Error("bootstrap password does not verify against stored hash")
	}
}

func TestEnsureSuperAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := adminstore.New(db)
	existing, err := store.Create(ctx, "ops@treadhub.com", "original-pass", "Ops", models.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to create existing admin: %v", err)
	}

	deps := DBDeps{MongoDatabase: db}

	// Promotion must not require (or touch) the password.
	err = ensureSuperAdmin(ctx, deps, "ops@treadhub.com", "", "", testLogger())
	if err != nil {
		t.Fatalf("ensureSuperAdmin failed: %v", err)
	}

	promoted, err := store.GetByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("failed to find admin: %v", err)
	}

	if promoted.Role != models.RoleSuperAdmin {
		t.Errorf("expected role %q, got %q", models.RoleSuperAdmin, promoted.Role)
	}
	if !store.ComparePassword(promoted, "original-pass") {
		t.Error("promotion changed the existing password")
	}
}

func TestEnsureSuperAdmin_AlreadySuperAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := adminstore.New(db)
	existing, err := store.Create(ctx, "boss@treadhub.com", "bootstrap-pass-1", "Boss", models.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("failed to create super admin: %v", err)
	}

	deps := DBDeps{MongoDatabase: db}

	err = ensureSuperAdmin(ctx, deps, "boss@treadhub.com", "different-pass", "Different Name", testLogger())
	if err != nil {
		t.Fatalf("ensureSuperAdmin failed: %v", err)
	}

	after, err := store.GetByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("failed to find admin: %v", err)
	}

	if after.Name != "Boss" {
		t.Errorf("idempotent run modified name: got %q", after.Name)
	}
	if !store.ComparePassword(after, "bootstrap-pass-1") {
		t.Error("idempotent run modified the password")
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 admin, got %d", count)
	}
}

func TestEnsureSuperAdmin_MissingPasswordOnCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	err := ensureSuperAdmin(ctx, deps, "boss@treadhub.com", "", "", testLogger())
	if err == nil {
		t.Fatal("expected error when creating a super admin without a password")
	}
}
