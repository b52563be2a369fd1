//go:build unit || e2e

package builder

import (
	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID            string
	Name          string
	DailyRate     string
	WeeklyRate    string
	MonthlyRate   string
	Deposit       string
	MinRentalDays int
	MaxRentalDays int
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:            "excavator-mini-01",
		Name:          "Mini excavator 1.7t",
		DailyRate:     "450",
		WeeklyRate:    "2800",
		Deposit:       "2000",
		MinRentalDays: 1,
		MaxRentalDays: 30,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) Build() *shared.Listing {
	return &shared.Listing{
		ID:       l.ID,
		Name:     l.Name,
		Location: "Portland, OR",
		Images:   []string{},
		Schedule: rate.Schedule{
			DailyRate:     money.MustParse(l.DailyRate),
			WeeklyRate:    optional(l.WeeklyRate),
			MonthlyRate:   optional(l.MonthlyRate),
			DepositAmount: money.MustParse(l.Deposit),
			MinRentalDays: l.MinRentalDays,
			MaxRentalDays: l.MaxRentalDays,
		},
	}
}

func optional(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	return money.Ptr(money.MustParse(s))
}
