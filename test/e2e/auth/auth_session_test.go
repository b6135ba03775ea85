package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoginInvalidCredentials verifies unknown emails and wrong passwords
// are indistinguishable.
func TestLoginInvalidCredentials(t *testing.T) {
	svc := setupAuthContainer(t)
	ctx := t.Context()

	email := uniqueEmail("bob")
	svc.signupVerified(t, svc.newClient(t), email, "Bob")

	client := svc.newClient(t)

	_, wrongPassword := client.Login(ctx, email, "not-the-password")
	_, unknownEmail := client.Login(ctx, uniqueEmail("nobody"), testPassword)

	assertStatus(t, wrongPassword, http.StatusUnauthorized, "邮箱或密码错误")
	assertStatus(t, unknownEmail, http.StatusUnauthorized, "邮箱或密码错误")
	require.Empty(t, client.SessionToken())
}

// TestLogoutRevokesSession verifies a logged out token no longer resolves,
// even when replayed.
func TestLogoutRevokesSession(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)
	ctx := t.Context()

	svc.signupVerified(t, client, uniqueEmail("carol"), "Carol")
	token := client.SessionToken()

	require.NoError(t, client.Logout(ctx))
	require.Empty(t, client.SessionToken(), "Logout should clear the cookie")

	_, err := client.Me(ctx)
	assertStatus(t, err, http.StatusUnauthorized, "未登录")

	client.SetSessionToken(token)
	_, err = client.Me(ctx)
	assertStatus(t, err, http.StatusUnauthorized, "未登录")

	// Logging out again is harmless.
	require.NoError(t, client.Logout(ctx))
}

// TestLoginIssuesFreshSessions verifies each login gets its own token and
// both resolve to the same user.
func TestLoginIssuesFreshSessions(t *testing.T) {
	svc := setupAuthContainer(t)
	ctx := t.Context()

	email := uniqueEmail("dave")
	signupClient := svc.newClient(t)
	user := svc.signupVerified(t, signupClient, email, "Dave")

	first := svc.newClient(t)
	_, err := first.Login(ctx, email, testPassword)
	require.NoError(t, err)

	second := svc.newClient(t)
	_, err = second.Login(ctx, email, testPassword)
	require.NoError(t, err)

	require.NotEqual(t, first.SessionToken(), second.SessionToken())
	require.NotEqual(t, signupClient.SessionToken(), first.SessionToken())

	me1, err := first.Me(ctx)
	require.NoError(t, err)
	me2, err := second.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, user.ID, me1.ID)
	require.Equal(t, user.ID, me2.ID)

	// Logging out one session leaves the other alive.
	require.NoError(t, first.Logout(ctx))
	_, err = second.Me(ctx)
	require.NoError(t, err)
}
