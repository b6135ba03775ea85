package auth_test

import (
	"net/http"
	"testing"

	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that /api/auth/login is rate limited.
// This endpoint has strict limits (5 req/min) to prevent brute force attacks.
func TestRateLimitLoginEndpoint(t *testing.T) {
	svc := setupAuthContainerWithDefaultRateLimits(t)
	client := svc.newClient(t)
	ctx := t.Context()

	// We'll make 6 requests rapidly and expect the 6th to be rate limited
	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "wrong@example.com", "wrongpass")
		if i < 5 {
			assertStatus(t, err, http.StatusUnauthorized, "")
		} else {
			lastErr = err
		}
	}

	assertStatus(t, lastErr, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
}

// TestSendCodeCooldown verifies the per-email resend cooldown.
func TestSendCodeCooldown(t *testing.T) {
	svc := setupAuthContainerWithDefaultRateLimits(t)
	client := svc.newClient(t)
	ctx := t.Context()

	email := uniqueEmail("cooldown")
	require.NoError(t, client.SendCode(ctx, email))

	err := client.SendCode(ctx, email)
	assertStatus(t, err, http.StatusTooManyRequests, "验证码发送过于频繁，请稍后再试")

	// A different address is not affected.
	require.NoError(t, client.SendCode(ctx, uniqueEmail("other")))
}

// TestVerifyCodeAttemptLimit verifies a code dies after repeated misses.
func TestVerifyCodeAttemptLimit(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)
	ctx := t.Context()

	email := uniqueEmail("guess")
	require.NoError(t, client.SendCode(ctx, email))
	code := svc.sentCodes(t, email, 1)[0]

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	for range 5 {
		err := client.VerifyCode(ctx, email, wrong)
		assertStatus(t, err, http.StatusBadRequest, "验证码无效或已过期")
	}

	err := client.VerifyCode(ctx, email, code)
	assertStatus(t, err, http.StatusBadRequest, "验证码无效或已过期")

	_, err = client.Signup(ctx, authsdk.SignupRequest{Email: email, Password: testPassword, Name: "Guess"})
	assertStatus(t, err, http.StatusBadRequest, "请先验证邮箱")
}
