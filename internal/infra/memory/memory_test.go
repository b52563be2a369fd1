//go:build unit

package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/infra/memory"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadListings(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded catalog", func(t *testing.T) {
		store, err := memory.LoadListings("")
		require.NoError(t, err)
		require.NotEmpty(t, store.IDs())

		l, err := store.FindByID(ctx, "excavator-mini-01")
		require.NoError(t, err)
		assert.Equal(t, "Mini excavator 1.7t", l.Name)
		assert.True(t, l.Schedule.DailyRate.Equal(money.MustParse("450")))
		require.NotNil(t, l.Schedule.WeeklyRate)
		assert.True(t, l.Schedule.WeeklyRate.Equal(money.MustParse("2800")))
		assert.True(t, l.Schedule.DepositAmount.Equal(money.MustParse("2000")))
		require.NoError(t, l.Schedule.Validate())
	})

	t.Run("every embedded listing has a valid schedule", func(t *testing.T) {
		store, err := memory.LoadListings("")
		require.NoError(t, err)
		for _, id := range store.IDs() {
			l, err := store.FindByID(ctx, id)
			require.NoError(t, err)
			assert.NoError(t, l.Schedule.Validate(), id)
		}
	})

	t.Run("unknown listing", func(t *testing.T) {
		store, err := memory.LoadListings("")
		require.NoError(t, err)
		_, err = store.FindByID(ctx, "does-not-exist")
		assert.True(t, errs.Is(err, shared.ErrListingNotFound))
	})

	t.Run("missing tiers stay nil", func(t *testing.T) {
		store, err := memory.ParseListings([]byte(`
listings:
  - id: a
    daily_rate: "10"
    min_rental_days: 1
    max_rental_days: 5
`))
		require.NoError(t, err)
		l, err := store.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.Nil(t, l.Schedule.WeeklyRate)
		assert.Nil(t, l.Schedule.MonthlyRate)
		assert.True(t, l.Schedule.DepositAmount.IsZero())
	})

	t.Run("rejects malformed amounts and duplicates", func(t *testing.T) {
		_, err := memory.ParseListings([]byte(`
listings:
  - id: a
    daily_rate: "ten"
`))
		assert.Error(t, err)

		_, err = memory.ParseListings([]byte(`
listings:
  - id: a
    daily_rate: "10"
  - id: a
    daily_rate: "12"
`))
		assert.Error(t, err)
	})

	t.Run("returned listings are copies", func(t *testing.T) {
		store, err := memory.LoadListings("")
		require.NoError(t, err)
		l, err := store.FindByID(ctx, "excavator-mini-01")
		require.NoError(t, err)
		l.Images[0] = "mutated"

		again, err := store.FindByID(ctx, "excavator-mini-01")
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.Images[0])
	})
}

func newSession(t *testing.T, now time.Time) *negotiation.Session {
	t.Helper()
	period := daterange.Range{Start: daterange.Date(now), End: daterange.Date(now).AddDate(0, 0, 6)}
	s, err := negotiation.NewSession(uuid.New(), "excavator-mini-01", "renter-1", period, money.MustParse("3150"), now)
	require.NoError(t, err)
	return s
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("get returns an independent copy", func(t *testing.T) {
		store := memory.NewSessionStore()
		s := newSession(t, now)
		require.NoError(t, store.Create(ctx, s))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		got.Status = negotiation.StatusRejected
		got.History = append(got.History, negotiation.Offer{})

		again, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusActive, again.Status)
		assert.Empty(t, again.History)
	})

	t.Run("create rejects duplicate ids", func(t *testing.T) {
		store := memory.NewSessionStore()
		s := newSession(t, now)
		require.NoError(t, store.Create(ctx, s))
		assert.Error(t, store.Create(ctx, s))
	})

	t.Run("update persists only on success", func(t *testing.T) {
		store := memory.NewSessionStore()
		s := newSession(t, now)
		require.NoError(t, store.Create(ctx, s))

		_, err := store.Update(ctx, s.ID, func(s *negotiation.Session) error {
			s.RoundCount = 99
			return negotiation.ErrSessionClosed
		})
		require.ErrorIs(t, err, negotiation.ErrSessionClosed)

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.RoundCount)

		updated, err := store.Update(ctx, s.ID, func(s *negotiation.Session) error {
			_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse("3000"), "", now)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.RoundCount)
		assert.True(t, updated.AwaitingResponse)
	})

	t.Run("unknown session", func(t *testing.T) {
		store := memory.NewSessionStore()
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, shared.ErrSessionNotFound))
		_, err = store.Update(ctx, uuid.New(), func(*negotiation.Session) error { return nil })
		assert.True(t, errs.Is(err, shared.ErrSessionNotFound))
	})

	t.Run("find active ignores closed sessions", func(t *testing.T) {
		store := memory.NewSessionStore()
		closed := newSession(t, now)
		require.NoError(t, closed.Expire("test", now))
		require.NoError(t, store.Create(ctx, closed))

		_, err := store.FindActive(ctx, "excavator-mini-01", "renter-1")
		assert.True(t, errs.Is(err, shared.ErrSessionNotFound))

		active := newSession(t, now.Add(time.Minute))
		require.NoError(t, store.Create(ctx, active))
		got, err := store.FindActive(ctx, "excavator-mini-01", "renter-1")
		require.NoError(t, err)
		assert.Equal(t, active.ID, got.ID)

		_, err = store.FindActive(ctx, "excavator-mini-01", "renter-2")
		assert.True(t, errs.Is(err, shared.ErrSessionNotFound))
	})

	t.Run("list idle", func(t *testing.T) {
		store := memory.NewSessionStore()
		old := newSession(t, now)
		fresh := newSession(t, now.Add(25*time.Minute))
		require.NoError(t, store.Create(ctx, old))
		require.NoError(t, store.Create(ctx, fresh))

		ids, err := store.ListIdle(ctx, 30*time.Minute, now.Add(40*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{old.ID}, ids)
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		store := memory.NewSessionStore()
		s := newSession(t, now)
		require.NoError(t, store.Create(ctx, s))

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, s.ID, func(s *negotiation.Session) error {
					s.RoundCount++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, got.RoundCount)
	})
}
