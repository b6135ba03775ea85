package domain

import "time"

// VerificationCode is the single live code record for an email address.
// Issuing a new code replaces the row, so at most one code exists per email.
type VerificationCode struct {
	Email         string     // normalized address, primary key
	CodeHash      string     // fingerprint of email and code (base64url SHA-256)
	ExpiresAt     time.Time  // code is unusable after this
	Consumed      bool       // set once by a successful verify
	Attempts      int        // failed submissions against this code (max 5)
	VerifiedUntil *time.Time // set on successful verify, gates signup until then
	CreatedAt     time.Time  // used for the resend cooldown
}
