package http

import (
	"html/template"
	"net/http"

	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>Acad Co-Pilot</title></head>
<body>
<h1>欢迎, {{.Name}}</h1>
<p>{{.Email}} · {{.Role}}{{with .Institution}} · {{.}}{{end}}</p>
<form method="post" action="/api/auth/logout"><button type="submit">退出登录</button></form>
</body>
</html>
`))

// DashboardHandler renders the landing page for a signed-in user. It sits
// behind RequireUserPage.
func DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		httpx.NoCache(w)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := dashboardTmpl.Execute(w, user); err != nil {
			slogx.FromContext(r.Context()).Error("failed to render dashboard", "err", err)
		}
	}
}
