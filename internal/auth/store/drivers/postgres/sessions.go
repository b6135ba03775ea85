package postgres

import (
	"context"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
)

type sessionsRepo struct {
	q querier
}

func (r *sessionsRepo) InsertSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (id, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, s.ID, s.UserID, utc(s.ExpiresAt), utc(s.CreatedAt))
	return mapConstraint(err)
}

func (r *sessionsRepo) FindSessionWithUser(
	ctx context.Context,
	id string,
	now time.Time,
) (domain.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `
		SELECT u.id, u.email, u.name, u.password_hash, u.role, u.institution, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1 AND s.expires_at > $2
	`, id, utc(now)))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM sessions
		WHERE user_id = $1 AND expires_at <= $2
	`, userID, utc(now))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
