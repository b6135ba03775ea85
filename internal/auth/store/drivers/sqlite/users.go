package sqlite

import (
	"context"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) InsertUser(ctx context.Context, u domain.User) error {
	err := r.q.InsertUser(ctx, gen.InsertUserParams{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Institution:  u.Institution,
		CreatedAt:    toMillis(u.CreatedAt),
	})
	return mapConstraint(err)
}
