package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/acadcopilot/copilot/pkg/idx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

// SignupInput is the typed signup request. Role and Institution are optional.
type SignupInput struct {
	Email       string
	Password    string
	Name        string
	Role        string
	Institution string
}

type SignupService struct {
	Store    store.Store
	Sessions *SessionService

	// RequireVerification gates signup on a verified email record.
	RequireVerification bool
}

// Signup creates an account and immediately opens a session for it.
// It performs the following steps:
// 1. Validates input in a fixed order, first failure wins
// 2. Hashes the password
// 3. In one transaction: rejects taken emails, checks verification,
// inserts the user and session, and clears the verification record
func (s *SignupService) Signup(ctx context.Context, in SignupInput) (SessionGrant, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || strings.TrimSpace(in.Password) == "" {
		return SessionGrant{}, invalidInput(ErrMissingFields)
	}
	if !validPasswordLength(in.Password) {
		return SessionGrant{}, invalidInput(ErrPasswordTooShort)
	}
	if !ValidEmail(email) {
		return SessionGrant{}, invalidInput(ErrInvalidEmail)
	}

	// 2. Hash the password outside the transaction
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return SessionGrant{}, err
	}

	now := clock(s.Sessions.Now)
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.ParseRole(in.Role),
		Institution:  strings.TrimSpace(in.Institution),
		CreatedAt:    now,
	}

	// 3. Persist atomically
	var grant SessionGrant
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().FindUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if s.RequireVerification {
			ok, err := tx.VerificationCodes().IsEmailVerified(ctx, email, user.CreatedAt)
			if err != nil {
				return err
			}
			if !ok {
				return ErrEmailNotVerified
			}
		}

		// The unique index closes the race with a concurrent signup.
		if err := tx.Users().InsertUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		token, expiresAt, err := s.Sessions.createIn(ctx, tx, user.ID)
		if err != nil {
			return err
		}

		if s.RequireVerification {
			if err := tx.VerificationCodes().DeleteVerificationCode(ctx, email); err != nil {
				return err
			}
		}

		grant = SessionGrant{User: user.Public(), Token: token, ExpiresAt: expiresAt}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			log.Info("signup rejected, email already registered", slogx.Email("email", email))
		case errors.Is(err, ErrEmailNotVerified):
			log.Info("signup rejected, email not verified", slogx.Email("email", email))
		default:
			log.Error("signup failed", slog.Any("error", err))
		}
		return SessionGrant{}, err
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return grant, nil
}
