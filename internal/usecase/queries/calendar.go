package queries

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/domain/schedule"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/shared"
)

type CalendarDay struct {
	schedule.TimeSlot
	Booked bool
}

type PricedWindow struct {
	schedule.Window
	Breakdown pricing.Breakdown
}

type CalendarView struct {
	Listing *shared.Listing
	Year    int
	Month   time.Month
	Days    []CalendarDay
	Windows []PricedWindow
}

type CalendarQueries interface {
	Month(ctx context.Context, equipmentID string, year int, month time.Month) (*CalendarView, error)
}

type calendarQueriesImpl struct {
	pricer       *shared.Pricer
	availability shared.AvailabilityReadStore
	scheduler    *schedule.Scheduler
	recommender  schedule.Recommender
	logger       *slog.Logger
}

func NewCalendarQueries(
	pricer *shared.Pricer,
	availability shared.AvailabilityReadStore,
	scheduler *schedule.Scheduler,
	recommender schedule.Recommender,
	logger *slog.Logger,
) CalendarQueries {
	return &calendarQueriesImpl{
		pricer:       pricer,
		availability: availability,
		scheduler:    scheduler,
		recommender:  recommender,
		logger:       logger,
	}
}

func (q *calendarQueriesImpl) Month(ctx context.Context, equipmentID string, year int, month time.Month) (*CalendarView, error) {
	listing, _, err := q.pricer.Validator(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	today := q.pricer.Today()

	first := daterange.NewDate(year, month, 1)
	last := first.AddDate(0, 1, -1)
	recommended := q.recommender.Recommend(year, month, today, listing.Schedule)

	// windows stretched to the minimum rental can spill into adjacent months
	from, to := first, last
	for _, w := range recommended {
		if w.Start.Before(from) {
			from = w.Start
		}
		if w.End.After(to) {
			to = w.End
		}
	}
	booked, err := q.availability.BookedRanges(ctx, equipmentID, from, to)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to load booked ranges"), errs.ErrDatabaseOperationFailed)
	}

	slots := q.scheduler.Month(year, month, today, listing.Schedule)
	days := make([]CalendarDay, 0, len(slots))
	for _, slot := range slots {
		day := CalendarDay{TimeSlot: slot, Booked: coveredBy(booked, slot.Date)}
		if day.Booked {
			day.Available = false
		}
		days = append(days, day)
	}

	var windows []PricedWindow
	for _, w := range recommended {
		if overlapsAny(booked, w.Range()) {
			continue
		}
		b, err := q.pricer.Assembler().Assemble(pricing.Request{Schedule: listing.Schedule, Range: w.Range()})
		if err != nil {
			q.logger.Warn("skipping unpriceable window",
				"equipment_id", equipmentID,
				"window", w.Label,
				"error", err)
			continue
		}
		windows = append(windows, PricedWindow{Window: w, Breakdown: b})
	}

	return &CalendarView{
		Listing: listing,
		Year:    year,
		Month:   month,
		Days:    days,
		Windows: windows,
	}, nil
}

func coveredBy(ranges []daterange.Range, d time.Time) bool {
	for _, r := range ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

func overlapsAny(ranges []daterange.Range, candidate daterange.Range) bool {
	for _, r := range ranges {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}
