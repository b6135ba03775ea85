package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sentCode struct {
	Email string
	Code  string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentCode
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentCode{Email: email, Code: code})
	return nil
}

func (m *fakeMailer) last(t *testing.T) sentCode {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

var errMailDown = errors.New("mail relay down")

// harness wires every service onto one store and clock.
type harness struct {
	store        store.Store
	clock        *fakeClock
	mailer       *fakeMailer
	sessions     *SessionService
	verification *VerificationService
	signup       *SignupService
	login        *LoginService
}

func newHarness(t *testing.T, requireVerification bool) *harness {
	t.Helper()
	return newHarnessOn(t, newTestStore(t), requireVerification)
}

// newFileStore opens a database file with the production connection string,
// so transactions run on a real pool and contend for the write lock.
func newFileStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "auth.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newHarnessOn(t *testing.T, st store.Store, requireVerification bool) *harness {
	t.Helper()

	clk := newFakeClock()
	mailer := &fakeMailer{}
	sessions := &SessionService{Store: st, Now: clk.Now}

	return &harness{
		store:    st,
		clock:    clk,
		mailer:   mailer,
		sessions: sessions,
		verification: &VerificationService{
			Store:    st,
			Mailer:   mailer,
			Cooldown: DefaultCodeCooldown,
			Now:      clk.Now,
		},
		signup: &SignupService{
			Store:               st,
			Sessions:            sessions,
			RequireVerification: requireVerification,
		},
		login: &LoginService{Store: st, Sessions: sessions},
	}
}

// verifyEmail runs the send and verify steps for email.
func (h *harness) verifyEmail(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()

	code, err := h.verification.Issue(ctx, email)
	require.NoError(t, err)
	require.NoError(t, h.verification.Verify(ctx, email, code))
}
