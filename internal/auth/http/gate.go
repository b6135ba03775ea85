package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type ctxKeyUser struct{}

// WithUser attaches the resolved public user to ctx.
func WithUser(ctx context.Context, u domain.PublicUser) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, u)
}

// UserFromContext returns the user attached by SessionGate. The boolean is
// false for anonymous requests.
func UserFromContext(ctx context.Context) (domain.PublicUser, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(domain.PublicUser)
	return u, ok
}

// SessionGate resolves the session cookie on every request. A live session
// attaches its user to the context, anything else leaves the request
// anonymous. Nothing is cached between requests so a revoked session is
// rejected on the very next call.
func SessionGate(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			user, err := sessions.Resolve(ctx, token)
			if err != nil {
				if !errors.Is(err, service.ErrNoSession) {
					slogx.FromContext(ctx).Error("failed to resolve session", slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = WithUser(ctx, user)
			ctx = httpx.WithUserID(ctx, user.ID)
			ctx = slogx.With(ctx, slog.String("user_id", user.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous API calls with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			httpx.WriteError(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUserPage redirects anonymous page requests to the login page.
func RequireUserPage(loginPath string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFromContext(r.Context()); !ok {
				httpx.NoCache(w)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
