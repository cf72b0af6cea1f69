// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	"github.com/treadhub/treadhub/internal/app/system/normalize"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// TreadHub seeds or promotes the configured super-admin account here so
// that a fresh deployment always has at least one account that can
// register further admins.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		return nil
	}
	return ensureSuperAdmin(ctx, deps, appCfg.SuperAdminEmail, appCfg.SuperAdminPassword, appCfg.SuperAdminName, logger)
}

// ensureSuperAdmin guarantees an admin with role super_admin exists for
// the given email. An existing account with a lesser role is promoted in
// place (its password is left alone); a missing account is created with
// the bootstrap password. Idempotent: running it again is a no-op.
func ensureSuperAdmin(ctx context.Context, deps DBDeps, email, password, name string, logger *zap.Logger) error {
	store := adminstore.New(deps.MongoDatabase)
	email = normalize.Email(email)

	existing, err := store.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == models.RoleSuperAdmin {
			logger.Info("super admin already present", zap.String("email", email))
			return nil
		}
		now := time.Now().UTC()
		_, err := deps.MongoDatabase.Collection("admins").UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"role": models.RoleSuperAdmin, "updated_at": now}})
		if err != nil {
			return fmt.Errorf("promote super admin: %w", err)
		}
		logger.Info("promoted existing admin to super admin", zap.String("email", email))
		return nil

	case errors.Is(err, mongo.ErrNoDocuments):
		if password == "" {
			return fmt.Errorf("superadmin_password must be set to create account %s", email)
		}
		if name == "" {
			name = "Super Admin"
		}
		created, err := store.Create(ctx, email, password, name, models.RoleSuperAdmin)
		if err != nil {
			return fmt.Errorf("create super admin: %w", err)
		}
		logger.Info("created super admin account",
			zap.String("email", created.Email),
			zap.String("id", created.ID.Hex()))
		return nil

	default:
		return fmt.Errorf("look up super admin: %w", err)
	}
}
