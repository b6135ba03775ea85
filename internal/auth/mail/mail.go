// Package mail delivers verification codes. The service depends on the
// Sender interface only, so delivery can fail or be swapped without touching
// the code lifecycle.
package mail

import (
	"context"
	"log/slog"
)

// Sender delivers a verification code to an email address.
type Sender interface {
	Send(ctx context.Context, email, code string) error
}

// LogSender writes codes to the log instead of sending mail. It exists for
// local development and end-to-end tests and must not be used in production.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, email, code string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "verification_code",
		slog.String("to", email),
		slog.String("code", code),
	)
	return nil
}
