//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"rental-pricing-engine/internal/infra/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
	err   error
}

func (c *countingExpirer) ExpireIdle(ctx context.Context) (int, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sweep must run with a deadline")
	}
	return 2, c.err
}

func TestNegotiationSweeper(t *testing.T) {
	t.Run("rejects a malformed schedule", func(t *testing.T) {
		_, err := jobs.NewNegotiationSweeper("every minute", &countingExpirer{})
		assert.Error(t, err)
	})

	t.Run("sweep calls the expirer", func(t *testing.T) {
		exp := &countingExpirer{}
		s, err := jobs.NewNegotiationSweeper("0 * * * * *", exp)
		require.NoError(t, err)

		s.Sweep()
		assert.Equal(t, int32(1), exp.calls.Load())
	})

	t.Run("sweep errors are logged, not raised", func(t *testing.T) {
		exp := &countingExpirer{err: errors.New("store unavailable")}
		s, err := jobs.NewNegotiationSweeper("0 * * * * *", exp)
		require.NoError(t, err)

		assert.NotPanics(t, s.Sweep)
	})

	t.Run("runs on schedule until stopped", func(t *testing.T) {
		exp := &countingExpirer{}
		s, err := jobs.NewNegotiationSweeper("* * * * * *", exp)
		require.NoError(t, err)

		s.Start()
		assert.Eventually(t, func() bool { return exp.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	})
}
