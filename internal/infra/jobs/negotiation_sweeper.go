package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// IdleExpirer closes sessions that have gone quiet.
type IdleExpirer interface {
	ExpireIdle(ctx context.Context) (int, error)
}

// NegotiationSweeper periodically expires idle negotiation sessions.
type NegotiationSweeper struct {
	cron    *cron.Cron
	expirer IdleExpirer
	timeout time.Duration
}

func NewNegotiationSweeper(schedule string, expirer IdleExpirer) (*NegotiationSweeper, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	s := &NegotiationSweeper{
		cron:    c,
		expirer: expirer,
		timeout: 30 * time.Second,
	}
	if _, err := c.AddFunc(schedule, s.Sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Sweep runs one expiry pass.
func (s *NegotiationSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.expirer.ExpireIdle(ctx)
	if err != nil {
		slog.Error("negotiation sweep failed", "expired", n, "error", err)
		return
	}
	if n > 0 {
		slog.Info("expired idle negotiations", "count", n)
	}
}

func (s *NegotiationSweeper) Start() {
	slog.Info("starting negotiation sweeper")
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *NegotiationSweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("negotiation sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
