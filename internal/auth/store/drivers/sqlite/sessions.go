package sqlite

import (
	"context"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) InsertSession(ctx context.Context, s domain.Session) error {
	err := r.q.InsertSession(ctx, gen.InsertSessionParams{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: toMillis(s.ExpiresAt),
		CreatedAt: toMillis(s.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *sessionsRepo) FindSessionWithUser(
	ctx context.Context,
	id string,
	now time.Time,
) (domain.User, error) {
	row, err := r.q.FindSessionWithUser(ctx, gen.FindSessionWithUserParams{
		ID:  id,
		Now: toMillis(now),
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(gen.User(row)), nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	return r.q.DeleteSession(ctx, id)
}

func (r *sessionsRepo) DeleteExpiredSessions(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {
	return r.q.DeleteExpiredSessions(ctx, gen.DeleteExpiredSessionsParams{
		UserID: userID,
		Now:    toMillis(now),
	})
}
