package service

import (
	"context"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/internal/auth/store/storetest"
	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, false)

	user := storetest.NewUser("a@b.com")
	require.NoError(t, h.store.Users().InsertUser(ctx, user))

	token, expiresAt, err := h.sessions.Create(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, token, 43, "256-bit base64url token")
	require.Equal(t, h.clock.Now().Add(DefaultSessionTTL), expiresAt)

	t.Run("stores the fingerprint, not the token", func(t *testing.T) {
		_, err := h.store.Sessions().FindSessionWithUser(ctx, token, h.clock.Now())
		require.Error(t, err)

		got, err := h.store.Sessions().FindSessionWithUser(ctx, cryptox.FingerprintToken(token), h.clock.Now())
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("resolve returns the public view", func(t *testing.T) {
		pub, err := h.sessions.Resolve(ctx, token)
		require.NoError(t, err)
		require.Equal(t, user.Public(), pub)
	})

	t.Run("empty and unknown tokens are anonymous", func(t *testing.T) {
		_, err := h.sessions.Resolve(ctx, "")
		require.ErrorIs(t, err, ErrNoSession)

		_, err = h.sessions.Resolve(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		require.NoError(t, h.sessions.Revoke(ctx, token))
		require.NoError(t, h.sessions.Revoke(ctx, token))
		require.NoError(t, h.sessions.Revoke(ctx, ""))

		_, err := h.sessions.Resolve(ctx, token)
		require.ErrorIs(t, err, ErrNoSession)
	})
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, false)
	h.sessions.TTL = time.Hour

	user := storetest.NewUser("exp@b.com")
	require.NoError(t, h.store.Users().InsertUser(ctx, user))

	token, _, err := h.sessions.Create(ctx, user.ID)
	require.NoError(t, err)

	h.clock.Advance(time.Hour - time.Millisecond)
	_, err = h.sessions.Resolve(ctx, token)
	require.NoError(t, err)

	h.clock.Advance(time.Millisecond)
	_, err = h.sessions.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrNoSession, "expiry at now is not valid")

	t.Run("sweep removes only expired rows", func(t *testing.T) {
		live, _, err := h.sessions.Create(ctx, user.ID)
		require.NoError(t, err)

		n, err := h.sessions.SweepExpired(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		_, err = h.sessions.Resolve(ctx, live)
		require.NoError(t, err)
	})
}

func TestSessionPublicViewOmitsHash(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, false)

	user := storetest.NewUser("pub@b.com")
	user.Role = domain.RoleTutor
	require.NoError(t, h.store.Users().InsertUser(ctx, user))

	token, _, err := h.sessions.Create(ctx, user.ID)
	require.NoError(t, err)

	pub, err := h.sessions.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleTutor, pub.Role)
	require.Equal(t, "pub@b.com", pub.Email)
}
