package negotiation

import (
	"context"
	"math/rand/v2"
	"time"
)

// ResponseDelay models the owner's reply latency.
type ResponseDelay interface {
	Wait(ctx context.Context) error
}

type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}

// RandomDelay waits a uniformly random duration in [Min, Max].
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
}

func (d RandomDelay) Wait(ctx context.Context) error {
	wait := d.Min
	if spread := d.Max - d.Min; spread > 0 {
		wait += rand.N(spread + 1)
	}
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
