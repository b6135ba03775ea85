package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testMailer struct {
	mu    sync.Mutex
	codes map[string]string
	err   error
}

func (m *testMailer) Send(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.codes[email] = code
	return nil
}

func (m *testMailer) code(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.codes[email]
	require.True(t, ok, "no code sent to %s", email)
	return code
}

type testServer struct {
	router *Router
	clock  *testClock
	mailer *testMailer

	mu     sync.Mutex
	nextIP int
}

func newTestServer(t *testing.T, requireVerification bool) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clk := &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	mailer := &testMailer{codes: map[string]string{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := &service.SessionService{Store: st, Now: clk.Now}
	router := NewRouter("test", st, logger, CookieConfig{Secure: true, TTL: service.DefaultSessionTTL})
	router.SessionService = sessions
	router.VerificationService = &service.VerificationService{
		Store:    st,
		Mailer:   mailer,
		Cooldown: service.DefaultCodeCooldown,
		Now:      clk.Now,
	}
	router.SignupService = &service.SignupService{
		Store:               st,
		Sessions:            sessions,
		RequireVerification: requireVerification,
	}
	router.LoginService = &service.LoginService{Store: st, Sessions: sessions}
	router.ApplyRoutes()

	return &testServer{router: router, clock: clk, mailer: mailer}
}

// do sends a request from a fresh client address so per-IP limits stay out
// of the way. Use doFrom to pin the address.
func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	s.mu.Lock()
	s.nextIP++
	addr := fmt.Sprintf("10.0.%d.%d:40000", s.nextIP/250, s.nextIP%250+1)
	s.mu.Unlock()
	return s.doFrom(t, addr, method, path, body, token)
}

func (s *testServer) doFrom(t *testing.T, addr, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = addr
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// verify runs send-code and verify-code for email.
func (s *testServer) verify(t *testing.T, email string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/send-code", authsdk.SendCodeRequest{Email: email}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	code := s.mailer.code(t, service.NormalizeEmail(email))
	rec = s.do(t, http.MethodPost, "/api/auth/verify-code", authsdk.VerifyCodeRequest{Email: email, Code: code}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// signup creates an account and returns the session token from the cookie.
func (s *testServer) signup(t *testing.T, req authsdk.SignupRequest) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/signup", req, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec).Value
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("response did not set %s", SessionCookieName)
	return nil
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body authsdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

var errMailDown = errors.New("smtp relay unreachable")
