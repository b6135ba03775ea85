package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httpapi "github.com/acadcopilot/copilot/internal/auth/http"
	"github.com/acadcopilot/copilot/internal/auth/mail"
	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	// ServiceName identifies the process in logs and traces.
	ServiceName = "acad-copilot-auth"
)

// Application owns the store, the services built on it and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	mailer mail.Sender

	sessions     *service.SessionService
	verification *service.VerificationService
	signup       *service.SignupService
	login        *service.LoginService
	housekeeping *service.HousekeepingService

	server *http.Server
}

// New validates cfg, opens the store and wires every service. The caller
// owns the returned Application and must Run or Shutdown it.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slogx.New(slogx.Config{
		Service: ServiceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	httpx.TrustProxyHeaders(cfg.TrustProxyHeaders)
	if cfg.TrustProxyHeaders {
		logger.Info("rate limits key on forwarded client addresses")
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database ready", "driver", cfg.DatabaseDriver)

	app := &Application{cfg: cfg, logger: logger, db: db, mailer: newMailer(cfg, logger)}
	app.wireServices()
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           otelhttp.NewHandler(app.routes(), ServiceName),
		ReadHeaderTimeout: 3 * time.Second,
	}
	return app, nil
}

// Handler is the fully wired HTTP handler, including tracing.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

// Run serves until ctx is cancelled or the listener fails, then shuts down.
func (app *Application) Run(ctx context.Context) error {
	app.housekeeping.Start(ctx)
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErr := make(chan error, 1)
	go func() { serverErr <- app.server.ListenAndServe() }()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("shutdown requested", "cause", context.Cause(ctx))
		return app.Shutdown()
	}
}

// Shutdown drains in-flight requests for up to ShutdownGracePeriod, stops
// the sweeper and closes the store.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		_ = app.server.Close()
	}
	app.housekeeping.Stop()

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	app.logger.Info("auth service stopped")
	return nil
}

func newMailer(cfg Config, logger *slog.Logger) mail.Sender {
	if cfg.MailDriver == MailDriverSMTP {
		logger.Info("mail driver configured", "driver", MailDriverSMTP, "host", cfg.SMTPHost)
		return &mail.SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			CodeTTL:  cfg.CodeTTL,
		}
	}

	if cfg.Env == "prod" {
		logger.Warn("log mail driver in production, verification codes will be written to the log")
	}
	return &mail.LogSender{Logger: logger}
}

func (app *Application) wireServices() {
	app.sessions = &service.SessionService{Store: app.db, TTL: app.cfg.SessionTTL}
	app.verification = &service.VerificationService{
		Store:       app.db,
		Mailer:      app.mailer,
		CodeTTL:     app.cfg.CodeTTL,
		Cooldown:    app.cfg.CodeCooldown,
		VerifiedTTL: app.cfg.VerifiedTTL,
	}
	app.signup = &service.SignupService{
		Store:               app.db,
		Sessions:            app.sessions,
		RequireVerification: app.cfg.RequireEmailVerification,
	}
	app.login = &service.LoginService{Store: app.db, Sessions: app.sessions}
	app.housekeeping = service.NewHousekeepingService(app.db, app.logger, app.cfg.HousekeepingInterval)

	if !app.cfg.RequireEmailVerification {
		app.logger.Warn("email verification disabled, signup accepts unverified addresses")
	}
}

func (app *Application) routes() http.Handler {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger, httpapi.CookieConfig{
		Secure: app.cfg.CookieSecure,
		TTL:    app.cfg.SessionTTL,
	})
	router.SessionService = app.sessions
	router.VerificationService = app.verification
	router.SignupService = app.signup
	router.LoginService = app.login
	router.ApplyRoutes()
	return router
}
