package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestSignupFlow covers send-code, verify-code and signup, then reads the
// account back through the new session.
func TestSignupFlow(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)
	ctx := t.Context()

	email := uniqueEmail("alice")
	user := svc.signupVerified(t, client, email, "Alice")
	require.Equal(t, email, user.Email)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, authsdk.RoleStudent, user.Role)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, user, me)
}

// TestSignupWithoutVerification verifies the server re-checks verification.
func TestSignupWithoutVerification(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)

	_, err := client.Signup(t.Context(), authsdk.SignupRequest{
		Email:    uniqueEmail("skip"),
		Password: testPassword,
		Name:     "Skip",
	})
	assertStatus(t, err, http.StatusBadRequest, "请先验证邮箱")
	require.Empty(t, client.SessionToken())
}

// TestSignupDuplicateEmail verifies case-insensitive uniqueness.
func TestSignupDuplicateEmail(t *testing.T) {
	svc := setupAuthContainer(t)
	ctx := t.Context()

	email := uniqueEmail("dup")
	svc.signupVerified(t, svc.newClient(t), email, "First")

	other := svc.newClient(t)
	upper := strings.ToUpper(email)
	require.NoError(t, other.SendCode(ctx, upper))
	require.NoError(t, other.VerifyCode(ctx, upper, svc.sentCodes(t, email, 2)[1]))

	_, err := other.Signup(ctx, authsdk.SignupRequest{Email: upper, Password: testPassword, Name: "Second"})
	assertStatus(t, err, http.StatusConflict, "该邮箱已被注册")
}

// TestSignupValidation verifies rule order and messages.
func TestSignupValidation(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)
	ctx := t.Context()

	_, err := client.Signup(ctx, authsdk.SignupRequest{Email: "a@b.com", Password: testPassword})
	assertStatus(t, err, http.StatusBadRequest, "请填写所有必填字段")

	_, err = client.Signup(ctx, authsdk.SignupRequest{Email: "a@b.com", Password: "abc", Name: "X"})
	assertStatus(t, err, http.StatusBadRequest, "密码至少需要6个字符")

	_, err = client.Signup(ctx, authsdk.SignupRequest{Email: "not-an-email", Password: testPassword, Name: "X"})
	assertStatus(t, err, http.StatusBadRequest, "请输入有效的邮箱地址")
}

// TestVerificationCodeSingleUse verifies a code cannot be replayed and a
// reissued code supersedes the previous one.
func TestVerificationCodeSingleUse(t *testing.T) {
	svc := setupAuthContainer(t)
	client := svc.newClient(t)
	ctx := t.Context()

	email := uniqueEmail("code")

	require.NoError(t, client.SendCode(ctx, email))
	require.NoError(t, client.SendCode(ctx, email))
	codes := svc.sentCodes(t, email, 2)

	if codes[0] != codes[1] {
		err := client.VerifyCode(ctx, email, codes[0])
		assertStatus(t, err, http.StatusBadRequest, "验证码无效或已过期")
	}

	require.NoError(t, client.VerifyCode(ctx, email, codes[1]))

	err := client.VerifyCode(ctx, email, codes[1])
	assertStatus(t, err, http.StatusBadRequest, "验证码无效或已过期")
}
