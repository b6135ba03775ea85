package sqlite_test

import (
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
)

func storetestSession(id, userID string) domain.Session {
	now := time.Now().UTC()
	return domain.Session{ID: id, UserID: userID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
}
