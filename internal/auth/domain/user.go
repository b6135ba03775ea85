package domain

import "time"

type User struct {
	ID           string
	Email        string // lowercased and trimmed, unique
	Name         string
	PasswordHash string // pbkdf2 encoded hex(salt):hex(key)
	Role         Role
	Institution  string // optional, empty when not provided
	CreatedAt    time.Time
}

// PublicUser is the view of a user that leaves the service. It never carries
// the password hash.
type PublicUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	Institution string `json:"institution"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Institution: u.Institution,
	}
}
