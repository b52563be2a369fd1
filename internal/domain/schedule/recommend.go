package schedule

import (
	"sort"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/rate"

	"github.com/shopspring/decimal"
)

// SourceHeuristicPolicy marks windows produced from a fixed calendar table
// rather than observed demand.
const SourceHeuristicPolicy = "heuristic-policy"

type Window struct {
	Label             string
	Start             time.Time
	End               time.Time
	DayCount          int
	UndiscountedTotal decimal.Decimal
	TotalSavings      decimal.Decimal
	ExpectedTotal     decimal.Decimal
	Confidence        float64
	Reason            string
	Source            string
}

func (w Window) Range() daterange.Range {
	return daterange.Range{Start: w.Start, End: w.End}
}

type Recommender interface {
	Recommend(year int, month time.Month, today time.Time, schedule rate.Schedule) []Window
}

type policyEntry struct {
	label      string
	length     int
	confidence float64
	reason     string
	// start picks the first day for a window of the given length.
	start func(year int, month time.Month, length int) time.Time
}

// policyTable is static. Confidence values are fixed per entry and say
// nothing about actual demand.
var policyTable = []policyEntry{
	{
		label:      "Mid-month weekday saver",
		length:     4,
		confidence: 0.85,
		reason:     "weekday demand dips in the middle of the month",
		start: func(year int, month time.Month, _ int) time.Time {
			return nextWeekday(daterange.NewDate(year, month, 15), time.Monday)
		},
	},
	{
		label:      "Month-end clearance",
		length:     7,
		confidence: 0.9,
		reason:     "owners discount idle equipment before the month closes",
		start: func(year int, month time.Month, length int) time.Time {
			return daterange.NewDate(year, month, daysIn(year, month)-length+1)
		},
	},
	{
		label:      "Popular weekend, partially discounted",
		length:     4,
		confidence: 0.6,
		reason:     "weekend days are full price but the surrounding weekdays are not",
		start: func(year int, month time.Month, _ int) time.Time {
			return nextWeekday(daterange.NewDate(year, month, 8), time.Friday)
		},
	},
	{
		label:      "Early-month work week",
		length:     5,
		confidence: 0.7,
		reason:     "projects rarely start in the first week",
		start: func(year int, month time.Month, _ int) time.Time {
			return nextWeekday(daterange.NewDate(year, month, 1), time.Monday)
		},
	},
}

const maxWindows = 4

// HeuristicPolicy proposes up to four windows from policyTable, ranked by
// confidence then savings. Window lengths are stretched to the schedule's
// minimum and cut to its maximum. Windows starting before today are dropped,
// so late in a month fewer than two may remain.
type HeuristicPolicy struct {
	demand DemandModel
}

func NewHeuristicPolicy(model DemandModel) *HeuristicPolicy {
	if model == nil {
		model = HeuristicDemand{}
	}
	return &HeuristicPolicy{demand: model}
}

func (p *HeuristicPolicy) Recommend(year int, month time.Month, today time.Time, schedule rate.Schedule) []Window {
	today = daterange.Date(today)
	windows := make([]Window, 0, len(policyTable))
	for _, e := range policyTable {
		length := clampLength(e.length, schedule)
		start := e.start(year, month, length)
		if start.Before(today) {
			continue
		}
		windows = append(windows, p.price(e, start, length, schedule))
	}

	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Confidence != windows[j].Confidence {
			return windows[i].Confidence > windows[j].Confidence
		}
		if !windows[i].TotalSavings.Equal(windows[j].TotalSavings) {
			return windows[i].TotalSavings.GreaterThan(windows[j].TotalSavings)
		}
		return windows[i].Start.Before(windows[j].Start)
	})
	if len(windows) > maxWindows {
		windows = windows[:maxWindows]
	}
	return windows
}

func (p *HeuristicPolicy) price(e policyEntry, start time.Time, length int, schedule rate.Schedule) Window {
	w := Window{
		Label:        e.label,
		Start:        start,
		End:          start.AddDate(0, 0, length-1),
		DayCount:     length,
		Confidence:   e.confidence,
		Reason:       e.reason,
		Source:       SourceHeuristicPolicy,
		TotalSavings: decimal.Zero,
	}
	w.UndiscountedTotal = schedule.DailyRate.Mul(decimal.NewFromInt(int64(length)))
	for _, day := range w.Range().Days() {
		c := p.demand.Classify(day)
		w.TotalSavings = w.TotalSavings.Add(schedule.DailyRate.Sub(discounted(schedule.DailyRate, c.DiscountPercent)))
	}
	w.ExpectedTotal = w.UndiscountedTotal.Sub(w.TotalSavings)
	return w
}

func clampLength(length int, schedule rate.Schedule) int {
	if schedule.MinRentalDays > 0 && length < schedule.MinRentalDays {
		length = schedule.MinRentalDays
	}
	if schedule.MaxRentalDays > 0 && length > schedule.MaxRentalDays {
		length = schedule.MaxRentalDays
	}
	return length
}

func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}
