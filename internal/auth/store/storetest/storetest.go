// Package storetest holds the behaviour every store driver must share. Driver
// packages call Run from their own tests with a constructor for a fresh,
// migrated store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store with migrations applied. It should register
// any cleanup with t.
type Factory func(t *testing.T) store.Store

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("VerificationCodes", func(t *testing.T) { testVerificationCodes(t, newStore(t)) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("ConcurrentTransactions", func(t *testing.T) { testConcurrentTransactions(t, newStore(t)) })
}

// NewUser builds a valid user row for the given email.
func NewUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "00112233445566778899aabbccddeeff:00",
		Role:         domain.RoleStudent,
		CreatedAt:    base,
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	t.Run("InsertAndFind", func(t *testing.T) {
		u := NewUser("alice@example.com")
		u.Role = domain.RoleTutor
		u.Institution = "UNSW"
		require.NoError(t, s.Users().InsertUser(ctx, u))

		got, err := s.Users().FindUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, u.Name, got.Name)
		require.Equal(t, u.PasswordHash, got.PasswordHash)
		require.Equal(t, domain.RoleTutor, got.Role)
		require.Equal(t, "UNSW", got.Institution)
		require.True(t, u.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		require.NoError(t, s.Users().InsertUser(ctx, NewUser("dup@example.com")))

		err := s.Users().InsertUser(ctx, NewUser("dup@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Users().FindUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()

	u := NewUser("sess@example.com")
	require.NoError(t, s.Users().InsertUser(ctx, u))

	live := domain.Session{ID: "live", UserID: u.ID, ExpiresAt: base.Add(time.Hour), CreatedAt: base}
	expired := domain.Session{ID: "expired", UserID: u.ID, ExpiresAt: base, CreatedAt: base.Add(-time.Hour)}
	require.NoError(t, s.Sessions().InsertSession(ctx, live))
	require.NoError(t, s.Sessions().InsertSession(ctx, expired))

	t.Run("DuplicateID", func(t *testing.T) {
		err := s.Sessions().InsertSession(ctx, live)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("FindActive", func(t *testing.T) {
		got, err := s.Sessions().FindSessionWithUser(ctx, "live", base)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, u.Email, got.Email)
	})

	t.Run("ExpiryIsStrict", func(t *testing.T) {
		_, err := s.Sessions().FindSessionWithUser(ctx, "expired", base)
		require.ErrorIs(t, err, store.ErrNotFound, "expires_at == now is not active")

		_, err = s.Sessions().FindSessionWithUser(ctx, "live", base.Add(time.Hour))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := s.Sessions().FindSessionWithUser(ctx, "nope", base)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("DeleteExpiredOnlyTouchesThatUser", func(t *testing.T) {
		other := NewUser("other@example.com")
		require.NoError(t, s.Users().InsertUser(ctx, other))
		require.NoError(t, s.Sessions().InsertSession(ctx, domain.Session{
			ID: "other-expired", UserID: other.ID, ExpiresAt: base, CreatedAt: base,
		}))

		n, err := s.Sessions().DeleteExpiredSessions(ctx, u.ID, base)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		n, err = s.Sessions().DeleteExpiredSessions(ctx, u.ID, base)
		require.NoError(t, err)
		require.Zero(t, n)

		_, err = s.Sessions().FindSessionWithUser(ctx, "live", base)
		require.NoError(t, err, "live session survives the sweep")

		n, err = s.Sessions().DeleteExpiredSessions(ctx, other.ID, base)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		require.NoError(t, s.Sessions().DeleteSession(ctx, "live"))
		require.NoError(t, s.Sessions().DeleteSession(ctx, "live"))

		_, err := s.Sessions().FindSessionWithUser(ctx, "live", base)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testVerificationCodes(t *testing.T, s store.Store) {
	ctx := context.Background()
	codes := s.VerificationCodes()
	const maxAttempts = 5

	issue := func(t *testing.T, email, hash string, at time.Time) {
		t.Helper()
		require.NoError(t, codes.UpsertVerificationCode(ctx, domain.VerificationCode{
			Email:     email,
			CodeHash:  hash,
			ExpiresAt: at.Add(10 * time.Minute),
			CreatedAt: at,
		}))
	}

	t.Run("ConsumeOnce", func(t *testing.T) {
		issue(t, "x@y.com", "h1", base)

		until := base.Add(30 * time.Minute)
		require.NoError(t, codes.ConsumeVerificationCode(ctx, "x@y.com", "h1", base, until, maxAttempts))

		err := codes.ConsumeVerificationCode(ctx, "x@y.com", "h1", base, until, maxAttempts)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := codes.GetVerificationCode(ctx, "x@y.com")
		require.NoError(t, err)
		require.True(t, got.Consumed)
		require.NotNil(t, got.VerifiedUntil)
		require.True(t, until.Equal(*got.VerifiedUntil))

		ok, err := codes.IsEmailVerified(ctx, "x@y.com", base)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = codes.IsEmailVerified(ctx, "x@y.com", until)
		require.NoError(t, err)
		require.False(t, ok, "verified status lapses at verified_until")
	})

	t.Run("ReissueSupersedes", func(t *testing.T) {
		issue(t, "re@y.com", "first", base)
		issue(t, "re@y.com", "second", base.Add(time.Minute))

		err := codes.ConsumeVerificationCode(ctx, "re@y.com", "first", base.Add(time.Minute), base.Add(time.Hour), maxAttempts)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, codes.ConsumeVerificationCode(ctx, "re@y.com", "second", base.Add(time.Minute), base.Add(time.Hour), maxAttempts))
	})

	t.Run("ReissueClearsVerified", func(t *testing.T) {
		issue(t, "clear@y.com", "h", base)
		require.NoError(t, codes.ConsumeVerificationCode(ctx, "clear@y.com", "h", base, base.Add(time.Hour), maxAttempts))

		issue(t, "clear@y.com", "h2", base.Add(time.Minute))
		ok, err := codes.IsEmailVerified(ctx, "clear@y.com", base.Add(time.Minute))
		require.NoError(t, err)
		require.False(t, ok)

		got, err := codes.GetVerificationCode(ctx, "clear@y.com")
		require.NoError(t, err)
		require.False(t, got.Consumed)
		require.Zero(t, got.Attempts)
		require.Nil(t, got.VerifiedUntil)
	})

	t.Run("ExpiredCodeRejected", func(t *testing.T) {
		issue(t, "late@y.com", "h", base)
		err := codes.ConsumeVerificationCode(ctx, "late@y.com", "h", base.Add(10*time.Minute), base.Add(time.Hour), maxAttempts)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("AttemptsExhaustCode", func(t *testing.T) {
		issue(t, "brute@y.com", "h", base)
		for range maxAttempts {
			require.NoError(t, codes.IncrementVerificationAttempts(ctx, "brute@y.com"))
		}

		got, err := codes.GetVerificationCode(ctx, "brute@y.com")
		require.NoError(t, err)
		require.Equal(t, maxAttempts, got.Attempts)

		err = codes.ConsumeVerificationCode(ctx, "brute@y.com", "h", base, base.Add(time.Hour), maxAttempts)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("DeleteAndHousekeeping", func(t *testing.T) {
		issue(t, "gone@y.com", "h", base)
		require.NoError(t, codes.DeleteVerificationCode(ctx, "gone@y.com"))
		_, err := codes.GetVerificationCode(ctx, "gone@y.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		issue(t, "fresh@y.com", "h", base.Add(time.Hour))

		n, err := codes.DeleteExpiredVerificationCodes(ctx, base.Add(time.Hour))
		require.NoError(t, err)
		require.Positive(t, n)

		_, err = codes.GetVerificationCode(ctx, "fresh@y.com")
		require.NoError(t, err, "live code survives housekeeping")

		_, err = codes.GetVerificationCode(ctx, "x@y.com")
		require.ErrorIs(t, err, store.ErrNotFound, "lapsed verified record is removed")
	})
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	t.Run("RollbackOnError", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Users().InsertUser(ctx, NewUser("rollback@example.com")))
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		_, err = s.Users().FindUserByEmail(ctx, "rollback@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("CommitOnSuccess", func(t *testing.T) {
		u := NewUser("commit@example.com")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().InsertUser(ctx, u); err != nil {
				return err
			}
			return tx.Sessions().InsertSession(ctx, domain.Session{
				ID: "tx-session", UserID: u.ID, ExpiresAt: base.Add(time.Hour), CreatedAt: base,
			})
		})
		require.NoError(t, err)

		got, err := s.Sessions().FindSessionWithUser(ctx, "tx-session", base)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("NestedTxRejected", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			require.ErrorIs(t, err, store.ErrNestedTx)
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.ErrorIs(t, err, store.ErrNestedTx)
	})
}

// testConcurrentTransactions runs read-then-write transactions in parallel.
// Writers on different rows must all commit, writers racing for one email
// must leave exactly one row.
func testConcurrentTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()
	const writers = 16

	insertIfAbsent := func(email string) error {
		return s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Users().FindUserByEmail(ctx, email); err == nil {
				return store.ErrAlreadyExists
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			return tx.Users().InsertUser(ctx, NewUser(email))
		})
	}

	run := func(emailFor func(i int) string) []error {
		errs := make([]error, writers)
		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = insertIfAbsent(emailFor(i))
			}()
		}
		wg.Wait()
		return errs
	}

	t.Run("DistinctRows", func(t *testing.T) {
		for i, err := range run(func(i int) string { return fmt.Sprintf("writer%d@example.com", i) }) {
			require.NoError(t, err, "writer %d", i)
		}
	})

	t.Run("SameRow", func(t *testing.T) {
		var ok int
		for _, err := range run(func(int) string { return "contested@example.com" }) {
			if err == nil {
				ok++
				continue
			}
			require.ErrorIs(t, err, store.ErrAlreadyExists)
		}
		require.Equal(t, 1, ok)
	})
}
