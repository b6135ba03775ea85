package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type LoginService struct {
	Store    store.Store
	Sessions *SessionService
}

// Login checks credentials and opens a new session. Unknown emails and wrong
// passwords both return ErrInvalidCredentials after the same amount of
// hashing work.
func (s *LoginService) Login(ctx context.Context, email, password string) (SessionGrant, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return SessionGrant{}, invalidInput(ErrMissingFields)
	}

	// 2. Look up the user
	user, err := s.Store.Users().FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash())
			log.Info("login failed", slog.String("reason", "unknown_email"))
			return SessionGrant{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return SessionGrant{}, err
	}

	// 3. Verify the password
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login failed",
				slog.String("reason", "password_mismatch"),
				slog.String("user_id", user.ID),
			)
			return SessionGrant{}, ErrInvalidCredentials
		}
		log.Error("stored password hash is unreadable",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return SessionGrant{}, err
	}

	// 4. Sweep this user's expired sessions and open a new one
	var grant SessionGrant
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Sessions.sweepIn(ctx, tx, user.ID); err != nil {
			return err
		}
		token, expiresAt, err := s.Sessions.createIn(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		grant = SessionGrant{User: user.Public(), Token: token, ExpiresAt: expiresAt}
		return nil
	})
	if err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return SessionGrant{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return grant, nil
}
