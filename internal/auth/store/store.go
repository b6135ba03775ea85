package store

import (
	"context"
	"errors"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrNestedTx      = errors.New("store: nested transactions are not supported")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a Tx cannot start another transaction by accident.
//
// Every time-sensitive query takes the caller's notion of now so services can
// run against a controlled clock.
type Store interface {
	Users() Users
	Sessions() Sessions
	VerificationCodes() VerificationCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// FindUserByEmail looks up a user by normalized email.
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)

	// InsertUser creates the user row. A duplicate email returns
	// ErrAlreadyExists from the unique constraint, not from a pre-check.
	InsertUser(ctx context.Context, u domain.User) error
}

type Sessions interface {
	// InsertSession stores a new session row keyed by the token fingerprint.
	InsertSession(ctx context.Context, s domain.Session) error

	// FindSessionWithUser returns the owning user of a session that is still
	// active at now. Unknown and expired sessions both return ErrNotFound.
	FindSessionWithUser(ctx context.Context, id string, now time.Time) (domain.User, error)

	// DeleteSession removes a session. Deleting an unknown id is not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes a user's sessions with expires_at <= now
	// and returns how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, userID string, now time.Time) (int64, error)
}

type VerificationCodes interface {
	// UpsertVerificationCode replaces any existing record for the email, which
	// supersedes a prior unconsumed code and clears verified status.
	UpsertVerificationCode(ctx context.Context, v domain.VerificationCode) error

	// GetVerificationCode returns the current record for the email.
	GetVerificationCode(ctx context.Context, email string) (domain.VerificationCode, error)

	// ConsumeVerificationCode marks a live matching code consumed and stamps
	// verified_until in a single conditional update. It returns ErrNotFound
	// when no unconsumed, unexpired, matching code with attempts below
	// maxAttempts exists.
	ConsumeVerificationCode(
		ctx context.Context,
		email, codeHash string,
		now, verifiedUntil time.Time,
		maxAttempts int,
	) error

	// IncrementVerificationAttempts records a failed submission against the
	// live code for the email.
	IncrementVerificationAttempts(ctx context.Context, email string) error

	// IsEmailVerified reports whether the email has a consumed code with
	// verified_until > now.
	IsEmailVerified(ctx context.Context, email string, now time.Time) (bool, error)

	// DeleteVerificationCode removes the record for the email.
	DeleteVerificationCode(ctx context.Context, email string) error

	// DeleteExpiredVerificationCodes is housekeeping. It removes unconsumed
	// codes past expires_at and verified records past verified_until.
	DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}
