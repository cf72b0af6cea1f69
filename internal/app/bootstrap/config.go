// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TreadHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: TREADHUB_MONGO_URI, TREADHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "treadhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// JWT session configuration
	{Name: "jwt_secret", Default: "", Desc: "HMAC signing secret for session tokens (required)"},
	{Name: "jwt_ttl", Default: "168h", Desc: "Session token lifetime (e.g., 24h, 168h)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@treadhub.com", Desc: "From email address"},
	{Name: "mail_from_name", Default: "TreadHub", Desc: "From display name"},

	// Base URL of the admin frontend, used for password reset links
	{Name: "admin_client_url", Default: "http://localhost:3000", Desc: "Base URL of the admin frontend for email links"},

	// Site display name used in outgoing email
	{Name: "site_name", Default: "TreadHub", Desc: "Site display name used in email subjects and bodies"},

	// SuperAdmin bootstrap
	{Name: "superadmin_email", Default: "", Desc: "Email of the super admin account (promotes/creates on startup)"},
	{Name: "superadmin_password", Default: "", Desc: "Bootstrap password for the super admin account (only used on first creation)"},
	{Name: "superadmin_name", Default: "Super Admin", Desc: "Display name for the super admin account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TREADHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TREADHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// JWT sessions
		JWTSecret: appValues.String("jwt_secret"),
		JWTTTL:    appValues.Duration("jwt_ttl", 168*time.Hour),

		// Email/SMTP
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		// Frontend and site identity
		AdminClientURL: appValues.String("admin_client_url"),
		SiteName:       appValues.String("site_name"),

		// SuperAdmin bootstrap
		SuperAdminEmail:    appValues.String("superadmin_email"),
		SuperAdminPassword: appValues.String("superadmin_password"),
		SuperAdminName:     appValues.String("superadmin_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// TreadHub validates the MongoDB URI format to catch configuration
// errors early, and refuses to start without a JWT signing secret:
// session tokens signed with an empty secret would be forgeable.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must be set (TREADHUB_JWT_SECRET)")
	}

	if appCfg.JWTTTL <= 0 {
		return fmt.Errorf("jwt_ttl must be a positive duration, got %s", appCfg.JWTTTL)
	}

	// Promoting an existing account needs no password, but creating one
	// does. Catch the half-configured case before Startup trips on it.
	if appCfg.SuperAdminEmail != "" && appCfg.SuperAdminPassword == "" {
		logger.Warn("superadmin_email is set without superadmin_password; seeding will only promote an existing account",
			zap.String("superadmin_email", appCfg.SuperAdminEmail))
	}

	return nil
}
