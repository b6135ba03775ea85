package http

import (
	"html/template"
	"net/http"

	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

// Page paths. RequireUserPage sends anonymous visitors to LoginPath.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var loginTmpl = template.Must(template.New("login").Parse(`<!doctype html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>登录 - Acad Co-Pilot</title></head>
<body>
<h1>欢迎回来</h1>
<form id="login-form">
<label>邮箱地址 <input type="email" name="email" required autocomplete="email"></label>
<label>密码 <input type="password" name="password" required autocomplete="current-password"></label>
<p id="form-error" role="alert"></p>
<button type="submit">登录</button>
</form>
<script>
document.getElementById('login-form').addEventListener('submit', async function (e) {
  e.preventDefault()
  var res = await fetch('/api/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: this.email.value.trim(), password: this.password.value})
  })
  if (res.ok) { window.location.href = {{.Dashboard}}; return }
  var data = await res.json().catch(function () { return {} })
  document.getElementById('form-error').textContent = data.error || '登录失败，请稍后重试'
})
</script>
</body>
</html>
`))

// LoginPageHandler serves the sign-in form. Visitors that already hold a
// session go straight to the dashboard. It sits behind SessionGate.
func LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		if _, ok := UserFromContext(r.Context()); ok {
			http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := loginTmpl.Execute(w, struct{ Dashboard string }{DashboardPath}); err != nil {
			slogx.FromContext(r.Context()).Error("failed to render login page", "err", err)
		}
	}
}
