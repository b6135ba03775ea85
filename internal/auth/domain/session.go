package domain

import "time"

// Session models the stored session row. ID is the fingerprint of the cookie
// token, the raw token is only ever held by the client.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
