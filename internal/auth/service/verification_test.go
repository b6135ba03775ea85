package service

import (
	"context"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestVerificationIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)

	code, err := h.verification.Issue(ctx, " X@Y.com ")
	require.NoError(t, err)
	require.True(t, cryptox.IsNumericCode(code))

	t.Run("stores a fingerprint", func(t *testing.T) {
		rec, err := h.store.VerificationCodes().GetVerificationCode(ctx, "x@y.com")
		require.NoError(t, err)
		require.NotContains(t, rec.CodeHash, code)
		require.Equal(t, cryptox.FingerprintCode("x@y.com", code), rec.CodeHash)
		require.Equal(t, h.clock.Now().Add(DefaultCodeTTL), rec.ExpiresAt)
	})

	require.NoError(t, h.verification.Verify(ctx, "x@y.com", code))
	require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", code), ErrInvalidCode, "codes are single use")

	ok, err := h.store.VerificationCodes().IsEmailVerified(ctx, "x@y.com", h.clock.Now())
	require.NoError(t, err)
	require.True(t, ok)

	h.clock.Advance(DefaultVerifiedTTL)
	ok, err = h.store.VerificationCodes().IsEmailVerified(ctx, "x@y.com", h.clock.Now())
	require.NoError(t, err)
	require.False(t, ok, "verified status is time bounded")
}

func TestVerificationReissueSupersedes(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)
	h.verification.Cooldown = 0

	first, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)
	second, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)

	if first != second {
		require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", first), ErrInvalidCode)
	}
	require.NoError(t, h.verification.Verify(ctx, "x@y.com", second))
}

func TestVerificationCooldown(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)

	_, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)

	h.clock.Advance(DefaultCodeCooldown - time.Second)
	_, err = h.verification.Issue(ctx, "x@y.com")
	require.ErrorIs(t, err, ErrCodeCooldown)

	_, err = h.verification.Issue(ctx, "other@y.com")
	require.NoError(t, err, "cooldown is per email")

	h.clock.Advance(time.Second)
	_, err = h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)
}

func TestVerificationRejectsMalformedInput(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)

	_, err := h.verification.Issue(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = h.verification.Issue(ctx, "not-an-email")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrInvalidEmail)

	code, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)

	for _, bad := range []string{"", "12345", "1234567", "12a456", "１２３４５６"} {
		require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", bad), ErrInvalidCode, "code %q", bad)
	}

	rec, err := h.store.VerificationCodes().GetVerificationCode(ctx, "x@y.com")
	require.NoError(t, err)
	require.Zero(t, rec.Attempts, "malformed codes never reach storage")

	require.NoError(t, h.verification.Verify(ctx, "x@y.com", " "+code+" "))
}

func TestVerificationExpiry(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)

	code, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)

	h.clock.Advance(DefaultCodeTTL)
	require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", code), ErrInvalidCode)
}

func TestVerificationAttemptLimit(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, true)

	code, err := h.verification.Issue(ctx, "x@y.com")
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	for range MaxCodeAttempts {
		require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", wrong), ErrInvalidCode)
	}

	require.ErrorIs(t, h.verification.Verify(ctx, "x@y.com", code), ErrInvalidCode,
		"the right code is dead after too many misses")
}

func TestVerificationSend(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers the issued code", func(t *testing.T) {
		h := newHarness(t, true)
		require.NoError(t, h.verification.Send(ctx, "X@Y.com"))

		sent := h.mailer.last(t)
		require.Equal(t, "x@y.com", sent.Email)
		require.NoError(t, h.verification.Verify(ctx, "x@y.com", sent.Code))
	})

	t.Run("delivery failure is reported", func(t *testing.T) {
		h := newHarness(t, true)
		h.mailer.err = errMailDown

		err := h.verification.Send(ctx, "x@y.com")
		require.ErrorIs(t, err, errMailDown)

		_, err = h.store.VerificationCodes().GetVerificationCode(ctx, "x@y.com")
		require.NoError(t, err, "code stays stored for a later retry")
	})
}
