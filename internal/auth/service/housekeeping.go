package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/store"
)

// DefaultSweepInterval is used when no interval is configured.
const DefaultSweepInterval = time.Hour

// HousekeepingService sweeps lapsed verification records on an interval.
// Sessions are not swept here, they are pruned per user at login.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &HousekeepingService{Store: st, Logger: logger, Interval: interval}
}

// Start launches the sweeper. The first sweep runs immediately. The sweeper
// exits when ctx is cancelled or Stop is called.
func (s *HousekeepingService) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.loop(ctx)
	}()
	s.Logger.Info("verification sweeper started", "interval", s.Interval)
}

// Stop cancels the sweeper and waits for an in-flight sweep to finish.
// It is safe to call when Start was never called.
func (s *HousekeepingService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.Logger.Info("verification sweeper stopped")
}

func (s *HousekeepingService) loop(ctx context.Context) {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		if _, err := s.Cleanup(ctx); err != nil && ctx.Err() == nil {
			s.Logger.Error("verification sweep failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// Cleanup deletes unconsumed codes past their expiry and verified records
// past their window, returning the number of rows removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) (int64, error) {
	n, err := s.Store.VerificationCodes().DeleteExpiredVerificationCodes(ctx, clock(s.Now))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.Logger.Info("verification sweep removed records", "count", n)
	}
	return n, nil
}
