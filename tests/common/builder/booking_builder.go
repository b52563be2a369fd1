//go:build unit || e2e

package builder

import (
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra/converter"
	"rental-pricing-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingBuilder defaults to the ten-day excavator rental with SUMMER20:
// base 4150, promo 830, service fee 398.40, deposit 2000, total 5718.40.
type BookingBuilder struct {
	ID              uuid.UUID
	Listing         *ListingBuilder
	RenterID        string
	Start           time.Time
	End             time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
	DeliveryAddress string
	Notes           string
	NegotiationID   *uuid.UUID
	NegotiatedTotal *decimal.Decimal
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Listing:   NewListingBuilder(),
		RenterID:  "renter-1",
		Start:     daterange.NewDate(2026, time.March, 2),
		End:       daterange.NewDate(2026, time.March, 11),
		PromoCode: "SUMMER20",
		CreatedAt: time.Date(2026, time.February, 20, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Build() (*pricing.BookingDetails, error) {
	priced, err := (&QuoteBuilder{
		Listing:         b.Listing,
		Start:           b.Start,
		End:             b.End,
		PromoCode:       b.PromoCode,
		InsurancePlanID: b.InsurancePlanID,
		Delivery:        b.Delivery,
	}).Build()
	if err != nil {
		return nil, err
	}
	breakdown := priced.Breakdown

	details := &pricing.BookingDetails{
		ID:              b.ID,
		EquipmentID:     priced.Listing.ID,
		RenterID:        b.RenterID,
		StartDate:       priced.Range.Start,
		EndDate:         priced.Range.End,
		TotalDays:       priced.Range.DayCount(),
		Breakdown:       breakdown,
		Delivery:        b.Delivery,
		DeliveryAddress: b.DeliveryAddress,
		Notes:           b.Notes,
		NegotiationID:   b.NegotiationID,
		NegotiatedTotal: b.NegotiatedTotal,
		CreatedAt:       b.CreatedAt,
	}
	if breakdown.PromoStatus == pricing.PromoApplied {
		details.PromoCode = string(breakdown.PromoCode)
	}
	if b.InsurancePlanID != "" {
		plan, err := insurance.DefaultCatalog().Find(b.InsurancePlanID)
		if err != nil {
			return nil, err
		}
		details.Insurance = &plan
	}
	return details, nil
}

func (b *BookingBuilder) BuildInfra() (db.Booking, error) {
	details, err := b.Build()
	if err != nil {
		return db.Booking{}, err
	}
	return converter.BookingToInfra(details), nil
}
