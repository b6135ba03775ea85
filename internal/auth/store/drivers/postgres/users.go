package postgres

import (
	"context"

	"github.com/acadcopilot/copilot/internal/auth/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, name, password_hash, role, institution, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.Institution, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CreatedAt = utc(u.CreatedAt)
	return u, nil
}

func (r *usersRepo) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) InsertUser(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, institution, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.Institution, utc(u.CreatedAt))
	return mapConstraint(err)
}
