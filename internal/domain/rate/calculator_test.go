//go:build unit

package rate_test

import (
	"testing"

	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedule(daily string, weekly, monthly *string) rate.Schedule {
	s := rate.Schedule{
		DailyRate:     money.MustParse(daily),
		DepositAmount: decimal.Zero,
		MinRentalDays: 1,
		MaxRentalDays: 365,
	}
	if weekly != nil {
		s.WeeklyRate = money.Ptr(money.MustParse(*weekly))
	}
	if monthly != nil {
		s.MonthlyRate = money.Ptr(money.MustParse(*monthly))
	}
	return s
}

func str(s string) *string { return &s }

func TestCalculate(t *testing.T) {
	t.Run("weekly tier for ten days", func(t *testing.T) {
		q, err := rate.Calculate(schedule("450", str("2800"), nil), 10)
		require.NoError(t, err)

		assert.Equal(t, rate.TierWeekly, q.Tier)
		assert.True(t, q.BasePrice.Equal(money.MustParse("4150")), "base %s", q.BasePrice)
		assert.True(t, q.DurationDiscount.Equal(money.MustParse("350")), "discount %s", q.DurationDiscount)
		assert.True(t, q.NaiveTotal.Equal(money.MustParse("4500")))
	})

	t.Run("tier selection", func(t *testing.T) {
		cases := []struct {
			name     string
			s        rate.Schedule
			days     int
			wantTier rate.Tier
			wantBase string
		}{
			{name: "short rental stays daily", s: schedule("100", str("600"), str("2000")), days: 6, wantTier: rate.TierDaily, wantBase: "600"},
			{name: "exactly one week", s: schedule("100", str("600"), str("2000")), days: 7, wantTier: rate.TierWeekly, wantBase: "600"},
			{name: "29 days uses weeks", s: schedule("100", str("600"), str("2000")), days: 29, wantTier: rate.TierWeekly, wantBase: "2500"},
			{name: "exactly one month", s: schedule("100", str("600"), str("2000")), days: 30, wantTier: rate.TierMonthly, wantBase: "2000"},
			{name: "month plus remainder at daily rate", s: schedule("100", str("600"), str("2000")), days: 45, wantTier: rate.TierMonthly, wantBase: "3500"},
			{name: "no weekly rate falls back to daily", s: schedule("100", nil, nil), days: 10, wantTier: rate.TierDaily, wantBase: "1000"},
			{name: "monthly only, below 30 days", s: schedule("100", nil, str("2000")), days: 20, wantTier: rate.TierDaily, wantBase: "2000"},
			{name: "monthly only, 61 days", s: schedule("100", nil, str("2000")), days: 61, wantTier: rate.TierMonthly, wantBase: "4100"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				q, err := rate.Calculate(c.s, c.days)
				require.NoError(t, err)
				assert.Equal(t, c.wantTier, q.Tier)
				assert.True(t, q.BasePrice.Equal(money.MustParse(c.wantBase)), "base %s want %s", q.BasePrice, c.wantBase)
				assert.True(t, q.NaiveTotal.Sub(q.DurationDiscount).Equal(q.BasePrice))
			})
		}
	})

	t.Run("monthly tier never exceeds the naive total", func(t *testing.T) {
		s := schedule("450", str("2800"), str("9000"))
		for days := 30; days <= 120; days++ {
			q, err := rate.Calculate(s, days)
			require.NoError(t, err)
			assert.True(t, q.BasePrice.LessThanOrEqual(q.NaiveTotal), "days=%d", days)
			assert.False(t, q.DurationDiscount.IsNegative(), "days=%d", days)
		}
	})

	t.Run("no tiers means no duration discount", func(t *testing.T) {
		s := schedule("450", nil, nil)
		for _, days := range []int{1, 7, 30, 90} {
			q, err := rate.Calculate(s, days)
			require.NoError(t, err)
			assert.True(t, q.BasePrice.Equal(q.NaiveTotal))
			assert.True(t, q.DurationDiscount.IsZero())
		}
	})

	t.Run("invalid day counts are rejected", func(t *testing.T) {
		for _, days := range []int{0, -3} {
			_, err := rate.Calculate(schedule("450", nil, nil), days)
			require.ErrorIs(t, err, rate.ErrInvalidDayCount)
		}
	})

	t.Run("missing daily rate is rejected before calculating", func(t *testing.T) {
		_, err := rate.Calculate(rate.Schedule{}, 3)
		require.ErrorIs(t, err, rate.ErrInvalidDailyRate)
	})
}

func TestScheduleValidate(t *testing.T) {
	valid := schedule("450", str("2800"), str("9000"))
	valid.DepositAmount = money.MustParse("2000")
	valid.MinRentalDays = 1
	valid.MaxRentalDays = 60

	cases := []struct {
		name   string
		mutate func(*rate.Schedule)
		errIs  error
	}{
		{name: "valid schedule", mutate: func(*rate.Schedule) {}},
		{name: "zero daily rate", mutate: func(s *rate.Schedule) { s.DailyRate = decimal.Zero }, errIs: rate.ErrInvalidDailyRate},
		{name: "negative weekly rate", mutate: func(s *rate.Schedule) { s.WeeklyRate = money.Ptr(money.MustParse("-1")) }, errIs: rate.ErrInvalidTierRate},
		{name: "zero monthly rate", mutate: func(s *rate.Schedule) { s.MonthlyRate = money.Ptr(decimal.Zero) }, errIs: rate.ErrInvalidTierRate},
		{name: "negative deposit", mutate: func(s *rate.Schedule) { s.DepositAmount = money.MustParse("-5") }, errIs: rate.ErrNegativeDeposit},
		{name: "min above max", mutate: func(s *rate.Schedule) { s.MinRentalDays = 10; s.MaxRentalDays = 5 }, errIs: rate.ErrInvalidRentalLimit},
		{name: "zero min", mutate: func(s *rate.Schedule) { s.MinRentalDays = 0 }, errIs: rate.ErrInvalidRentalLimit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid
			c.mutate(&s)
			err := s.Validate()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}

	assert.True(t, valid.AllowsDayCount(1))
	assert.True(t, valid.AllowsDayCount(60))
	assert.False(t, valid.AllowsDayCount(61))
}
