package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"

	_ "github.com/acadcopilot/copilot/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookies      CookieConfig

	store               store.Store
	SessionService      *service.SessionService
	VerificationService *service.VerificationService
	SignupService       *service.SignupService
	LoginService        *service.LoginService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	cookies CookieConfig,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		cookies:      cookies,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every route. The services must be set first.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Acad Co-Pilot Account API
//	@version		0.1.0
//	@description	Account and session service for Acad Co-Pilot: email verification, signup, login and logout.
//	@description
//	@description	Sessions are opaque tokens carried in the HttpOnly session_id cookie. Error bodies are {"error": "<message>"}.
//
//	@contact.name	Acad Co-Pilot Team
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session_id
//	@description				Opaque session token set by signup and login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	gate := SessionGate(r.SessionService)

	// Credential and code endpoints - strict by IP, then by IP + email
	signupHandler := &SignupHandler{SignupService: r.SignupService, Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	loginHandler := &LoginHandler{LoginService: r.LoginService, Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	sendCodeHandler := &SendCodeHandler{VerificationService: r.VerificationService}
	r.Mux.Handle("POST /api/auth/send-code",
		httpx.Chain(sendCodeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	verifyCodeHandler := &VerifyCodeHandler{VerificationService: r.VerificationService}
	r.Mux.Handle("POST /api/auth/verify-code",
		httpx.Chain(verifyCodeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /logout - moderate rate limit, works with or without a session
	logoutHandler := &LogoutHandler{SessionService: r.SessionService, Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /me - lenient rate limit by user, gate resolves the cookie first
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(MeHandler(),
			gate,
			httpx.RateLimitByUser(httpx.LenientLimit),
			RequireUser,
		),
	)
}

func (r *Router) registerPages() {
	r.Mux.Handle("GET "+LoginPath,
		httpx.Chain(LoginPageHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
			SessionGate(r.SessionService),
		),
	)
	r.Mux.Handle("GET "+DashboardPath,
		httpx.Chain(DashboardHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
			SessionGate(r.SessionService),
			RequireUserPage(LoginPath),
		),
	)
}

func (r *Router) registerSystem() {
	h := health{startTime: r.startTime, version: r.buildVersion, store: r.store}

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(h.Livez),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(h.Readyz),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
