package schedule

import (
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type TimeSlot struct {
	Date            time.Time
	Available       bool
	DemandLevel     DemandLevel
	DiscountPercent int
	Price           decimal.Decimal
	Recommended     bool
	Reason          string
}

type Scheduler struct {
	demand DemandModel
}

// NewScheduler falls back to HeuristicDemand when model is nil.
func NewScheduler(model DemandModel) *Scheduler {
	if model == nil {
		model = HeuristicDemand{}
	}
	return &Scheduler{demand: model}
}

// Month returns one slot per day of the month. Days before today are
// listed but not available.
func (s *Scheduler) Month(year int, month time.Month, today time.Time, schedule rate.Schedule) []TimeSlot {
	today = daterange.Date(today)
	n := daysIn(year, month)
	slots := make([]TimeSlot, 0, n)
	for day := 1; day <= n; day++ {
		date := daterange.NewDate(year, month, day)
		c := s.demand.Classify(date)
		slots = append(slots, TimeSlot{
			Date:            date,
			Available:       !date.Before(today),
			DemandLevel:     c.Demand,
			DiscountPercent: c.DiscountPercent,
			Price:           discounted(schedule.DailyRate, c.DiscountPercent),
			Recommended:     c.Recommended,
			Reason:          c.Reason,
		})
	}
	return slots
}

func discounted(daily decimal.Decimal, pct int) decimal.Decimal {
	return daily.Sub(daily.Mul(money.Percent(decimal.NewFromInt(int64(pct)))))
}
