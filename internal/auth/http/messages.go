package http

import (
	"errors"

	"github.com/acadcopilot/copilot/internal/auth/service"
)

// User-facing messages. The product UI is zh-CN.
const (
	msgMissingFields    = "请填写所有必填字段"
	msgPasswordTooShort = "密码至少需要6个字符"
	msgInvalidEmail     = "请输入有效的邮箱地址"
	msgEmailTaken       = "该邮箱已被注册"
	msgEmailNotVerified = "请先验证邮箱"
	msgSignupFailed     = "注册失败，请稍后重试"
	msgLoginMissing     = "请输入邮箱和密码"
	msgBadCredentials   = "邮箱或密码错误"
	msgLoginFailed      = "登录失败，请稍后重试"
	msgEmailRequired    = "请输入邮箱地址"
	msgCodeRequired     = "请输入邮箱和验证码"
	msgInvalidCode      = "验证码无效或已过期"
	msgCodeCooldown     = "验证码发送过于频繁，请稍后再试"
	msgSendCodeFailed   = "验证码发送失败，请稍后重试"
	msgVerifyFailed     = "验证失败，请稍后重试"
	msgUnauthenticated  = "未登录"
)

// invalidInputMessage names the validation rule that failed. missing is the
// route's own wording for ErrMissingFields.
func invalidInputMessage(err error, missing string) string {
	switch {
	case errors.Is(err, service.ErrPasswordTooShort):
		return msgPasswordTooShort
	case errors.Is(err, service.ErrInvalidEmail):
		return msgInvalidEmail
	default:
		return missing
	}
}
