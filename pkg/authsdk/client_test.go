package authsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeService mimics the cookie behaviour of the account service.
func fakeService(t *testing.T) *httptest.Server {
	t.Helper()

	user := User{ID: "01JB8Q1K9X1VZ4ZK6F0N7QW2GS", Email: "a@b.com", Name: "X", Role: RoleStudent}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		if req.Password != "abcdef" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "邮箱或密码错误"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "tok", Path: "/", HttpOnly: true})
		_ = json.NewEncoder(w).Encode(AuthResponse{Success: true, User: user})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if c, err := r.Cookie(SessionCookieName); err != nil || c.Value != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "未登录"})
			return
		}
		_ = json.NewEncoder(w).Encode(MeResponse{User: user})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", Path: "/", MaxAge: -1})
		_ = json.NewEncoder(w).Encode(SuccessResponse{Success: true})
	})
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "degraded",
			Checks: &HealthChecks{Database: "unavailable"},
		})
	})
	mux.HandleFunc("GET /broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSessionCookie(t *testing.T) {
	ctx := context.Background()
	srv := fakeService(t)

	client, err := NewSDKClient(srv.URL + "/")
	require.NoError(t, err)
	require.Equal(t, srv.URL, client.BaseURL)

	_, err = client.Me(ctx)
	require.True(t, IsStatus(err, http.StatusUnauthorized))

	user, err := client.Login(ctx, "a@b.com", "abcdef")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)
	require.Equal(t, "tok", client.SessionToken())

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, user, me)

	require.NoError(t, client.Logout(ctx))
	require.Empty(t, client.SessionToken())

	_, err = client.Me(ctx)
	require.True(t, IsStatus(err, http.StatusUnauthorized))

	client.SetSessionToken("tok")
	_, err = client.Me(ctx)
	require.NoError(t, err, "a replayed token is sent as-is")
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	srv := fakeService(t)

	client, err := NewSDKClient(srv.URL)
	require.NoError(t, err)

	_, err = client.Login(ctx, "a@b.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "邮箱或密码错误", apiErr.Message)

	resp, err := client.doRequest(ctx, http.MethodGet, "/broken", nil, nil)
	require.NoError(t, err)
	err = decodeJSON(resp, nil, http.StatusOK)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClientHealth(t *testing.T) {
	srv := fakeService(t)

	client, err := NewSDKClient(srv.URL)
	require.NoError(t, err)

	health, err := client.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	health, err = client.GetReadiness(context.Background())
	require.True(t, IsStatus(err, http.StatusServiceUnavailable))
	require.NotNil(t, health)
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "unavailable", health.Checks.Database)
}
