package rate

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDailyRate   = errors.New("daily rate must be positive")
	ErrInvalidTierRate    = errors.New("weekly and monthly rates must be positive when set")
	ErrNegativeDeposit    = errors.New("deposit cannot be negative")
	ErrInvalidRentalLimit = errors.New("rental day limits must satisfy 1 <= min <= max")
	ErrInvalidDayCount    = errors.New("day count must be at least 1")
)

// Schedule is the rate card of one equipment listing. It is owned by the
// listing and treated as immutable while a price is being computed.
type Schedule struct {
	DailyRate     decimal.Decimal
	WeeklyRate    *decimal.Decimal
	MonthlyRate   *decimal.Decimal
	DepositAmount decimal.Decimal
	MinRentalDays int
	MaxRentalDays int
}

func (s Schedule) Validate() error {
	if !s.DailyRate.IsPositive() {
		return ErrInvalidDailyRate
	}
	if s.WeeklyRate != nil && !s.WeeklyRate.IsPositive() {
		return ErrInvalidTierRate
	}
	if s.MonthlyRate != nil && !s.MonthlyRate.IsPositive() {
		return ErrInvalidTierRate
	}
	if s.DepositAmount.IsNegative() {
		return ErrNegativeDeposit
	}
	if s.MinRentalDays < 1 || s.MaxRentalDays < s.MinRentalDays {
		return ErrInvalidRentalLimit
	}
	return nil
}

// AllowsDayCount reports whether dayCount is inside [MinRentalDays, MaxRentalDays].
func (s Schedule) AllowsDayCount(dayCount int) bool {
	return dayCount >= s.MinRentalDays && dayCount <= s.MaxRentalDays
}
