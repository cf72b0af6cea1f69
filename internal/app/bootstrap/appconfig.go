// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is everything specific to the TreadHub admin backend:
// MongoDB connection details, JWT session settings, SMTP credentials for
// reset and reply emails, and the super-admin bootstrap account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the driver pool

	// JWT session configuration
	JWTSecret string        // HMAC signing secret for session tokens (required)
	JWTTTL    time.Duration // Session token lifetime (default: 168h)

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit, email-smtp.us-east-1.amazonaws.com for SES)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty for Mailpit)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@treadhub.com)
	MailFromName string // From display name (e.g., TreadHub)

	// AdminClientURL is the base URL of the admin frontend; password
	// reset links in email point there.
	AdminClientURL string

	// SiteName is the display name used in outgoing email.
	SiteName string

	// SuperAdmin bootstrap account (created or promoted on startup)
	SuperAdminEmail    string // Email of the super admin (blank disables seeding)
	SuperAdminPassword string // Bootstrap password, used only when the account does not exist yet
	SuperAdminName     string // Display name used when creating the account
}
