package rate

import (
	"github.com/shopspring/decimal"
)

const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

type Tier string

const (
	TierDaily   Tier = "daily"
	TierWeekly  Tier = "weekly"
	TierMonthly Tier = "monthly"
)

// Quote is the tier-optimised rental price. BasePrice is already net of
// DurationDiscount; NaiveTotal is dayCount x dailyRate.
type Quote struct {
	DayCount         int
	Tier             Tier
	NaiveTotal       decimal.Decimal
	BasePrice        decimal.Decimal
	DurationDiscount decimal.Decimal
}

// Calculate picks the coarsest tier the schedule offers for dayCount and
// prices the remainder at the daily rate.
//
// A weekly or monthly rate above the equivalent per-day total yields a
// negative DurationDiscount. That is a data error on the listing and is not
// corrected here.
func Calculate(s Schedule, dayCount int) (Quote, error) {
	if dayCount < 1 {
		return Quote{}, ErrInvalidDayCount
	}
	if !s.DailyRate.IsPositive() {
		return Quote{}, ErrInvalidDailyRate
	}

	days := decimal.NewFromInt(int64(dayCount))
	naive := s.DailyRate.Mul(days)

	tier := TierDaily
	base := naive
	switch {
	case dayCount >= DaysPerMonth && s.MonthlyRate != nil:
		tier = TierMonthly
		base = blockPrice(dayCount, DaysPerMonth, *s.MonthlyRate, s.DailyRate)
	case dayCount >= DaysPerWeek && s.WeeklyRate != nil:
		tier = TierWeekly
		base = blockPrice(dayCount, DaysPerWeek, *s.WeeklyRate, s.DailyRate)
	}

	return Quote{
		DayCount:         dayCount,
		Tier:             tier,
		NaiveTotal:       naive,
		BasePrice:        base,
		DurationDiscount: naive.Sub(base),
	}, nil
}

func blockPrice(dayCount, blockDays int, blockRate, dailyRate decimal.Decimal) decimal.Decimal {
	blocks := decimal.NewFromInt(int64(dayCount / blockDays))
	rest := decimal.NewFromInt(int64(dayCount % blockDays))
	return blocks.Mul(blockRate).Add(rest.Mul(dailyRate))
}
