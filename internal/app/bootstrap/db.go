// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/treadhub/treadhub/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema sets up indexes or schema as needed.
//
// TreadHub reconciles the index sets on admins, login_events, and
// contact_inquiries. The unique email index on admins is what backs
// duplicate-registration detection, so this must run before the app
// starts serving traffic.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("index setup failed", zap.Error(err))
		return err
	}
	logger.Info("indexes ensured")
	return nil
}
