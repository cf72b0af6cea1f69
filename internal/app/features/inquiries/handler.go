// internal/app/features/inquiries/handler.go
package inquiries

import (
	inquirystore "github.com/treadhub/treadhub/internal/app/store/inquiries"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/app/system/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MailSender sends a single email. Satisfied by *mailer.Mailer.
type MailSender interface {
	Send(mailer.Email) error
}

// Handler is the feature-level handler for customer contact inquiries:
// public submission plus the admin-side inbox and email replies.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	Inquiries *inquirystore.Store
	Issuer    *token.Issuer
	Mail      MailSender
	SiteName  string
}

func NewHandler(db *mongo.Database, issuer *token.Issuer, mail MailSender, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Inquiries: inquirystore.New(db),
		Issuer:    issuer,
		Mail:      mail,
		SiteName:  siteName,
	}
}
