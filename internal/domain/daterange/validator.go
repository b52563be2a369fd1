package daterange

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/rate"
)

// AvailabilityChecker reports whether a range is still free for a piece of
// equipment. It is backed by the booking store; nil means no check.
type AvailabilityChecker interface {
	IsFree(ctx context.Context, equipmentID string, r Range) (bool, error)
}

type Validator struct {
	Today       time.Time
	Schedule    rate.Schedule
	EquipmentID string
	Checker     AvailabilityChecker
}

func NewValidator(today time.Time, schedule rate.Schedule, equipmentID string, checker AvailabilityChecker) Validator {
	return Validator{
		Today:       Date(today),
		Schedule:    schedule,
		EquipmentID: equipmentID,
		Checker:     checker,
	}
}

// Selectable reports whether a single date may be picked at all.
func (v Validator) Selectable(t time.Time) bool {
	return !Date(t).Before(v.Today)
}

// ValidateRange checks a completed range: no past dates, end after start,
// dayCount within the schedule's limits, then the external availability check.
func (v Validator) ValidateRange(ctx context.Context, start, end time.Time) (Range, error) {
	r, err := New(start, end)
	if err != nil {
		return Range{}, err
	}
	if !v.Selectable(r.Start) {
		return Range{}, ErrDateInPast
	}
	if !v.Schedule.AllowsDayCount(r.DayCount()) {
		return Range{}, ErrDayCountOutOfRange
	}
	if v.Checker != nil {
		free, err := v.Checker.IsFree(ctx, v.EquipmentID, r)
		if err != nil {
			return Range{}, err
		}
		if !free {
			return Range{}, ErrRangeUnavailable
		}
	}
	return r, nil
}
