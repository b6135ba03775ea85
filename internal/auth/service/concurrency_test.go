package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const racers = 16

// race runs fn concurrently racers times and returns each call's error.
func race(fn func(i int) error) []error {
	errs := make([]error, racers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentSignupSameEmail(t *testing.T) {
	ctx := context.Background()
	h := newHarnessOn(t, newFileStore(t), false)

	errs := race(func(int) error {
		_, err := h.signup.Signup(ctx, SignupInput{Email: "dup@y.com", Password: "abcdef", Name: "Dup"})
		return err
	})

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, ErrEmailTaken)
	}
	require.Equal(t, 1, ok, "exactly one account per email")
}

func TestConcurrentSignupDistinctEmails(t *testing.T) {
	ctx := context.Background()
	h := newHarnessOn(t, newFileStore(t), false)

	errs := race(func(i int) error {
		_, err := h.signup.Signup(ctx, SignupInput{
			Email:    fmt.Sprintf("user%d@y.com", i),
			Password: "abcdef",
			Name:     "User",
		})
		return err
	})

	for i, err := range errs {
		require.NoError(t, err, "signup %d", i)
	}
	for i := range racers {
		_, err := h.login.Login(ctx, fmt.Sprintf("user%d@y.com", i), "abcdef")
		require.NoError(t, err)
	}
}

func TestConcurrentSignupVerifiedEmails(t *testing.T) {
	ctx := context.Background()
	h := newHarnessOn(t, newFileStore(t), true)

	for i := range racers {
		h.verifyEmail(t, fmt.Sprintf("v%d@y.com", i))
	}

	errs := race(func(i int) error {
		_, err := h.signup.Signup(ctx, SignupInput{
			Email:    fmt.Sprintf("v%d@y.com", i),
			Password: "abcdef",
			Name:     "Verified",
		})
		return err
	})

	for i, err := range errs {
		require.NoError(t, err, "signup %d", i)
	}
}

func TestConcurrentVerifySameCode(t *testing.T) {
	ctx := context.Background()
	h := newHarnessOn(t, newFileStore(t), true)

	code, err := h.verification.Issue(ctx, "once@y.com")
	require.NoError(t, err)

	errs := race(func(int) error {
		return h.verification.Verify(ctx, "once@y.com", code)
	})

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, ErrInvalidCode)
	}
	require.Equal(t, 1, ok, "a code is consumed once")
}

func TestConcurrentIssueDistinctEmails(t *testing.T) {
	ctx := context.Background()
	h := newHarnessOn(t, newFileStore(t), true)

	errs := race(func(i int) error {
		_, err := h.verification.Issue(ctx, fmt.Sprintf("issue%d@y.com", i))
		return err
	})

	for i, err := range errs {
		require.NoError(t, err, "issue %d", i)
	}
}
