//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/schedule"
	"rental-pricing-engine/internal/infra/memory"
	"rental-pricing-engine/internal/pkg/clock"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/queries"
	"rental-pricing-engine/internal/usecase/shared"
	"rental-pricing-engine/tests/common/builder"
	sharedmock "rental-pricing-engine/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCalendarQueries(t *testing.T, availability shared.AvailabilityReadStore) queries.CalendarQueries {
	t.Helper()
	return calendarQueriesFor(t, newPricer(t, availability), availability)
}

func calendarQueriesFor(t *testing.T, pricer *shared.Pricer, availability shared.AvailabilityReadStore) queries.CalendarQueries {
	t.Helper()
	demand := schedule.HeuristicDemand{}
	return queries.NewCalendarQueries(
		pricer,
		availability,
		schedule.NewScheduler(demand),
		schedule.NewHeuristicPolicy(demand),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestCalendarQueries_Month(t *testing.T) {
	ctx := context.Background()
	first := daterange.NewDate(2026, time.March, 1)
	last := daterange.NewDate(2026, time.March, 31)

	t.Run("booked days are unavailable and windows avoid them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := sharedmock.NewMockAvailabilityReadStore(ctrl)
		booked := daterange.Range{Start: daterange.NewDate(2026, time.March, 24), End: daterange.NewDate(2026, time.March, 26)}
		availability.EXPECT().BookedRanges(gomock.Any(), "excavator-mini-01", first, last).
			Return([]daterange.Range{booked}, nil)

		view, err := newCalendarQueries(t, availability).Month(ctx, "excavator-mini-01", 2026, time.March)
		require.NoError(t, err)

		assert.Equal(t, "excavator-mini-01", view.Listing.ID)
		require.Len(t, view.Days, 31)
		for _, d := range view.Days {
			if booked.Contains(d.Date) {
				assert.True(t, d.Booked, d.Date)
				assert.False(t, d.Available, d.Date)
				continue
			}
			assert.False(t, d.Booked, d.Date)
			assert.True(t, d.Available, d.Date)
		}
		for _, w := range view.Windows {
			assert.False(t, w.Range().Overlaps(booked), w.Label)
			assert.Equal(t, w.Range().DayCount(), w.Breakdown.DayCount, w.Label)
			assert.NoError(t, w.Breakdown.Verify(), w.Label)
		}
	})

	t.Run("windows spilling into the next month avoid its bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := sharedmock.NewMockAvailabilityReadStore(ctrl)
		listings, err := memory.NewListingStore(*builder.NewListingBuilder().With(func(l *builder.ListingBuilder) {
			l.MinRentalDays = 30
			l.MaxRentalDays = 60
		}).Build())
		require.NoError(t, err)
		assembler, err := builder.NewAssembler()
		require.NoError(t, err)
		pricer := shared.NewPricer(listings, availability, assembler, clock.NewMockClock(testNow))

		// thirty-day windows from Mar 13 and Mar 16 run to Apr 11 and Apr 14
		booked := daterange.Range{Start: daterange.NewDate(2026, time.April, 2), End: daterange.NewDate(2026, time.April, 4)}
		availability.EXPECT().BookedRanges(gomock.Any(), "excavator-mini-01", first, daterange.NewDate(2026, time.April, 14)).
			Return([]daterange.Range{booked}, nil)

		view, err := calendarQueriesFor(t, pricer, availability).Month(ctx, "excavator-mini-01", 2026, time.March)
		require.NoError(t, err)

		require.Len(t, view.Windows, 2)
		for _, w := range view.Windows {
			assert.False(t, w.Range().Overlaps(booked), w.Label)
			assert.Equal(t, 30, w.DayCount, w.Label)
		}
		for _, d := range view.Days {
			assert.False(t, d.Booked, d.Date)
		}
	})

	t.Run("free month keeps every recommended window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := sharedmock.NewMockAvailabilityReadStore(ctrl)
		availability.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := newCalendarQueries(t, availability).Month(ctx, "excavator-mini-01", 2026, time.March)
		require.NoError(t, err)
		assert.NotEmpty(t, view.Windows)
	})

	t.Run("store failure is a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := sharedmock.NewMockAvailabilityReadStore(ctrl)
		availability.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := newCalendarQueries(t, availability).Month(ctx, "excavator-mini-01", 2026, time.March)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("unknown listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := sharedmock.NewMockAvailabilityReadStore(ctrl)

		_, err := newCalendarQueries(t, availability).Month(ctx, "crane-404", 2026, time.March)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrListingNotFound))
	})
}
