package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/mail"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

const (
	DefaultCodeTTL      = 10 * time.Minute
	DefaultCodeCooldown = 60 * time.Second
	DefaultVerifiedTTL  = 30 * time.Minute

	// MaxCodeAttempts is the number of wrong submissions a code survives.
	MaxCodeAttempts = 5
)

// VerificationService owns the email verification code lifecycle used to
// prove address ownership before signup.
type VerificationService struct {
	Store  store.Store
	Mailer mail.Sender

	CodeTTL     time.Duration // lifetime of an issued code
	Cooldown    time.Duration // minimum gap between issues per email, 0 disables
	VerifiedTTL time.Duration // how long a verified email may complete signup

	Now func() time.Time
}

func (s *VerificationService) codeTTL() time.Duration {
	if s.CodeTTL <= 0 {
		return DefaultCodeTTL
	}
	return s.CodeTTL
}

func (s *VerificationService) verifiedTTL() time.Duration {
	if s.VerifiedTTL <= 0 {
		return DefaultVerifiedTTL
	}
	return s.VerifiedTTL
}

// Issue generates a fresh code for email and replaces any previous record,
// which supersedes an unconsumed code. The plaintext code is returned for
// delivery and never stored.
func (s *VerificationService) Issue(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the address
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return "", err
	}

	code, err := cryptox.GenerateNumericCode()
	if err != nil {
		return "", err
	}
	now := clock(s.Now)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Enforce the resend cooldown against the previous issue
		prev, err := tx.VerificationCodes().GetVerificationCode(ctx, email)
		switch {
		case err == nil:
			if s.Cooldown > 0 && now.Sub(prev.CreatedAt) < s.Cooldown {
				return ErrCodeCooldown
			}
		case errors.Is(err, store.ErrNotFound):
		default:
			return err
		}

		// 3. Replace the record, resetting consumed, attempts and verified status
		return tx.VerificationCodes().UpsertVerificationCode(ctx, domain.VerificationCode{
			Email:     email,
			CodeHash:  cryptox.FingerprintCode(email, code),
			ExpiresAt: now.Add(s.codeTTL()),
			CreatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, ErrCodeCooldown) {
			log.Info("verification code requested during cooldown", slogx.Email("email", email))
		}
		return "", err
	}

	log.Info("verification code issued", slogx.Email("email", email))
	return code, nil
}

// Send issues a code and hands it to the mailer. A delivery failure leaves
// the code stored, so the caller can retry once the cooldown has passed.
func (s *VerificationService) Send(ctx context.Context, email string) error {
	code, err := s.Issue(ctx, email)
	if err != nil {
		return err
	}

	if err := s.Mailer.Send(ctx, NormalizeEmail(email), code); err != nil {
		slogx.FromContext(ctx).Error("verification code delivery failed",
			slogx.Email("email", NormalizeEmail(email)),
			slog.Any("error", err),
		)
		return fmt.Errorf("deliver verification code: %w", err)
	}
	return nil
}

// Verify checks a submitted code. On success the code is consumed and the
// email is marked verified for VerifiedTTL. Wrong, expired, consumed and
// superseded codes all return ErrInvalidCode.
func (s *VerificationService) Verify(ctx context.Context, email, code string) error {
	log := slogx.FromContext(ctx)

	// 1. Reject malformed input before touching storage
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	code = strings.TrimSpace(code)
	if !cryptox.IsNumericCode(code) {
		return ErrInvalidCode
	}

	// 2. Consume with a single conditional update
	now := clock(s.Now)
	err := s.Store.VerificationCodes().ConsumeVerificationCode(
		ctx,
		email,
		cryptox.FingerprintCode(email, code),
		now,
		now.Add(s.verifiedTTL()),
		MaxCodeAttempts,
	)
	if err == nil {
		log.Info("email verified", slogx.Email("email", email))
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// 3. Count the miss against the live code
	if err := s.Store.VerificationCodes().IncrementVerificationAttempts(ctx, email); err != nil {
		log.Error("failed to record verification attempt", slog.Any("error", err))
	}
	log.Info("verification code rejected", slogx.Email("email", email))
	return ErrInvalidCode
}
