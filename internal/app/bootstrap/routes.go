// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	adminsfeature "github.com/treadhub/treadhub/internal/app/features/admins"
	healthfeature "github.com/treadhub/treadhub/internal/app/features/health"
	inquiriesfeature "github.com/treadhub/treadhub/internal/app/features/inquiries"
	"github.com/treadhub/treadhub/internal/app/system/mailer"
	"github.com/treadhub/treadhub/internal/app/system/requestid"
	"github.com/treadhub/treadhub/internal/app/system/token"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// TreadHub mounts a JSON API: /health for probes, /api/admin for the
// admin account and session endpoints, and /api/contact for customer
// inquiries. The admin frontend is a separate deployment, so CORS is
// opened to its configured origin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	issuer := token.New(appCfg.JWTSecret, appCfg.JWTTTL)

	mail := mailer.New(
		appCfg.MailSMTPHost,
		appCfg.MailSMTPPort,
		appCfg.MailSMTPUser,
		appCfg.MailSMTPPass,
		appCfg.MailFrom,
		appCfg.MailFromName,
	)

	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appCfg.AdminClientURL},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Admin accounts, sessions, and password reset
	adminsHandler := adminsfeature.NewHandler(deps.MongoDatabase, issuer, mail, appCfg.AdminClientURL, appCfg.SiteName, logger)
	r.Mount("/api/admin", adminsfeature.Routes(adminsHandler))

	// Customer contact inquiries
	inquiriesHandler := inquiriesfeature.NewHandler(deps.MongoDatabase, issuer, mail, appCfg.SiteName, logger)
	r.Mount("/api/contact", inquiriesfeature.Routes(inquiriesHandler))

	return r, nil
}
