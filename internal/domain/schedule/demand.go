package schedule

import "time"

type DemandLevel string

const (
	DemandLow DemandLevel = "low"
	// DemandMedium is never produced by HeuristicDemand; it exists for
	// models fed by real booking data.
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

const (
	ReasonLowDemandDay = "low demand day"
	ReasonEndOfMonth   = "end of month"
)

const (
	weekdayDiscountPercent   = 15
	quietDayDiscountPercent  = 20
	endOfMonthBonusPercent   = 10
	endOfMonthWindowLastDays = 7
)

// DayClass is the demand classification of a single calendar day.
type DayClass struct {
	Demand          DemandLevel
	DiscountPercent int
	Recommended     bool
	Reason          string
}

type DemandModel interface {
	Classify(date time.Time) DayClass
}

// HeuristicDemand classifies days by calendar position alone. Weekends are
// busy and never discounted. Tuesdays and Wednesdays are the quietest days
// and the last seven days of a month get an extra weekday discount.
type HeuristicDemand struct{}

func (HeuristicDemand) Classify(date time.Time) DayClass {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayClass{Demand: DemandHigh}
	}

	c := DayClass{Demand: DemandLow, DiscountPercent: weekdayDiscountPercent}
	switch date.Weekday() {
	case time.Tuesday, time.Wednesday:
		c.DiscountPercent = quietDayDiscountPercent
		c.Recommended = true
		c.Reason = ReasonLowDemandDay
	}
	if inLastWeek(date) {
		c.DiscountPercent += endOfMonthBonusPercent
		c.Recommended = true
		c.Reason = ReasonEndOfMonth
	}
	return c
}

func inLastWeek(date time.Time) bool {
	return date.Day() > daysIn(date.Year(), date.Month())-endOfMonthWindowLastDays
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
