package postgres

import (
	"context"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store"
)

type verificationCodesRepo struct {
	q querier
}

func (r *verificationCodesRepo) UpsertVerificationCode(
	ctx context.Context,
	v domain.VerificationCode,
) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO verification_codes (email, code_hash, expires_at, consumed, attempts, verified_until, created_at)
		VALUES ($1, $2, $3, FALSE, 0, NULL, $4)
		ON CONFLICT (email) DO UPDATE SET
			code_hash      = EXCLUDED.code_hash,
			expires_at     = EXCLUDED.expires_at,
			consumed       = FALSE,
			attempts       = 0,
			verified_until = NULL,
			created_at     = EXCLUDED.created_at
	`, v.Email, v.CodeHash, utc(v.ExpiresAt), utc(v.CreatedAt))
	return err
}

func (r *verificationCodesRepo) GetVerificationCode(
	ctx context.Context,
	email string,
) (domain.VerificationCode, error) {
	var v domain.VerificationCode
	err := r.q.QueryRow(ctx, `
		SELECT email, code_hash, expires_at, consumed, attempts, verified_until, created_at
		FROM verification_codes
		WHERE email = $1
	`, email).Scan(&v.Email, &v.CodeHash, &v.ExpiresAt, &v.Consumed, &v.Attempts, &v.VerifiedUntil, &v.CreatedAt)
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	v.ExpiresAt = utc(v.ExpiresAt)
	v.CreatedAt = utc(v.CreatedAt)
	v.VerifiedUntil = utcPtr(v.VerifiedUntil)
	return v, nil
}

func (r *verificationCodesRepo) ConsumeVerificationCode(
	ctx context.Context,
	email, codeHash string,
	now, verifiedUntil time.Time,
	maxAttempts int,
) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE verification_codes
		SET consumed = TRUE, verified_until = $1
		WHERE email = $2
		  AND code_hash = $3
		  AND consumed = FALSE
		  AND expires_at > $4
		  AND attempts < $5
	`, utc(verifiedUntil), email, codeHash, utc(now), maxAttempts)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *verificationCodesRepo) IncrementVerificationAttempts(ctx context.Context, email string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE verification_codes
		SET attempts = attempts + 1
		WHERE email = $1 AND consumed = FALSE
	`, email)
	return err
}

func (r *verificationCodesRepo) IsEmailVerified(
	ctx context.Context,
	email string,
	now time.Time,
) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM verification_codes
			WHERE email = $1 AND consumed = TRUE AND verified_until > $2
		)
	`, email, utc(now)).Scan(&ok)
	return ok, err
}

func (r *verificationCodesRepo) DeleteVerificationCode(ctx context.Context, email string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM verification_codes WHERE email = $1`, email)
	return err
}

func (r *verificationCodesRepo) DeleteExpiredVerificationCodes(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM verification_codes
		WHERE (consumed = FALSE AND expires_at <= $1)
		   OR (consumed = TRUE AND verified_until <= $1)
	`, utc(now))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
