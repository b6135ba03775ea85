package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite/gen"
)

type verificationCodesRepo struct {
	q *gen.Queries
}

func (r *verificationCodesRepo) UpsertVerificationCode(
	ctx context.Context,
	v domain.VerificationCode,
) error {
	return r.q.UpsertVerificationCode(ctx, gen.UpsertVerificationCodeParams{
		Email:     v.Email,
		CodeHash:  v.CodeHash,
		ExpiresAt: toMillis(v.ExpiresAt),
		CreatedAt: toMillis(v.CreatedAt),
	})
}

func (r *verificationCodesRepo) GetVerificationCode(
	ctx context.Context,
	email string,
) (domain.VerificationCode, error) {
	row, err := r.q.GetVerificationCode(ctx, email)
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return mapVerificationCode(row), nil
}

func (r *verificationCodesRepo) ConsumeVerificationCode(
	ctx context.Context,
	email, codeHash string,
	now, verifiedUntil time.Time,
	maxAttempts int,
) error {
	n, err := r.q.ConsumeVerificationCode(ctx, gen.ConsumeVerificationCodeParams{
		VerifiedUntil: sql.NullInt64{Int64: toMillis(verifiedUntil), Valid: true},
		Email:         email,
		CodeHash:      codeHash,
		Now:           toMillis(now),
		MaxAttempts:   int64(maxAttempts),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *verificationCodesRepo) IncrementVerificationAttempts(ctx context.Context, email string) error {
	return r.q.IncrementVerificationAttempts(ctx, email)
}

func (r *verificationCodesRepo) IsEmailVerified(
	ctx context.Context,
	email string,
	now time.Time,
) (bool, error) {
	count, err := r.q.CountVerifiedEmail(ctx, gen.CountVerifiedEmailParams{
		Email: email,
		Now:   toMillis(now),
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *verificationCodesRepo) DeleteVerificationCode(ctx context.Context, email string) error {
	return r.q.DeleteVerificationCode(ctx, email)
}

func (r *verificationCodesRepo) DeleteExpiredVerificationCodes(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	return r.q.DeleteExpiredVerificationCodes(ctx, toMillis(now))
}
