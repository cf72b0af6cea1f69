// internal/app/features/admins/handler.go
package admins

import (
	adminstore "github.com/treadhub/treadhub/internal/app/store/admins"
	loginstore "github.com/treadhub/treadhub/internal/app/store/logins"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/app/system/ratelimit"
	"github.com/treadhub/treadhub/internal/app/system/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MailSender sends a single email. Satisfied by *mailer.Mailer; tests
// substitute a recorder.
type MailSender interface {
	Send(mailer.Email) error
}

// Handler is the feature-level handler for admin accounts: registration,
// login, session identity, account management, and the password-reset flow.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Admins *adminstore.Store
	Logins *loginstore.Store
	Issuer *token.Issuer
	Mail   MailSender

	// ResetLimiter guards forgot-password against bulk probing. When it
	// trips, the handler still answers with the generic success message.
	ResetLimiter *ratelimit.LoginLimiter

	// AdminClientURL is the base URL of the admin frontend; reset links
	// point there.
	AdminClientURL string
	SiteName       string
}

func NewHandler(db *mongo.Database, issuer *token.Issuer, mail MailSender, adminClientURL, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:             db,
		Log:            logger,
		Admins:         adminstore.New(db),
		Logins:         loginstore.New(db),
		Issuer:         issuer,
		Mail:           mail,
		ResetLimiter:   ratelimit.NewLoginLimiter(),
		AdminClientURL: adminClientURL,
		SiteName:       siteName,
	}
}
