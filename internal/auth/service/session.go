package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

// DefaultSessionTTL is how long a session cookie stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionGrant is what signup and login hand back to the HTTP layer: the
// public user view plus the raw token for the cookie.
type SessionGrant struct {
	User      domain.PublicUser
	Token     string
	ExpiresAt time.Time
}

// SessionService issues, resolves and revokes opaque session tokens. The
// token is only returned to the caller, storage keeps its fingerprint.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
	Now   func() time.Time
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Create starts a new session for userID.
func (s *SessionService) Create(ctx context.Context, userID string) (string, time.Time, error) {
	return s.createIn(ctx, s.Store, userID)
}

// createIn inserts the session through st, which may be a transaction.
func (s *SessionService) createIn(ctx context.Context, st store.Store, userID string) (string, time.Time, error) {
	token, err := cryptox.NewSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}

	now := clock(s.Now)
	session := domain.Session{
		ID:        cryptox.FingerprintToken(token),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
	if err := st.Sessions().InsertSession(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	slogx.FromContext(ctx).Debug("session created",
		slog.String("user_id", userID),
		slog.Time("expires_at", session.ExpiresAt),
	)
	return token, session.ExpiresAt, nil
}

// Resolve maps a cookie token to its user. Empty, unknown and expired tokens
// all return ErrNoSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.PublicUser, error) {
	if token == "" {
		return domain.PublicUser{}, ErrNoSession
	}

	user, err := s.Store.Sessions().FindSessionWithUser(ctx, cryptox.FingerprintToken(token), clock(s.Now))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrNoSession
		}
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

// Revoke deletes the session for token. Unknown tokens are not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSession(ctx, cryptox.FingerprintToken(token))
}

// SweepExpired deletes userID's expired sessions.
func (s *SessionService) SweepExpired(ctx context.Context, userID string) (int64, error) {
	return s.sweepIn(ctx, s.Store, userID)
}

func (s *SessionService) sweepIn(ctx context.Context, st store.Store, userID string) (int64, error) {
	n, err := st.Sessions().DeleteExpiredSessions(ctx, userID, clock(s.Now))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slogx.FromContext(ctx).Debug("expired sessions swept",
			slog.String("user_id", userID),
			slog.Int64("deleted", n),
		)
	}
	return n, nil
}
