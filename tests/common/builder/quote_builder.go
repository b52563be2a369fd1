//go:build unit || e2e

package builder

import (
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/shared"
)

// DefaultDeliveryFee matches config.NewTestConfig.
const DefaultDeliveryFee = "75"

// NewAssembler wires the embedded promo catalog and default insurance plans.
func NewAssembler() (*pricing.Assembler, error) {
	promos, err := promo.LoadCatalog("")
	if err != nil {
		return nil, err
	}
	return pricing.NewAssembler(promos, insurance.DefaultCatalog(), money.MustParse(DefaultDeliveryFee))
}

// QuoteBuilder prices a range with the real assembler. Defaults match
// BookingBuilder: ten excavator days with SUMMER20, total 5718.40.
type QuoteBuilder struct {
	Listing         *ListingBuilder
	Start           time.Time
	End             time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		Listing:   NewListingBuilder(),
		Start:     daterange.NewDate(2026, time.March, 2),
		End:       daterange.NewDate(2026, time.March, 11),
		PromoCode: "SUMMER20",
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

func (q *QuoteBuilder) Build() (*shared.Priced, error) {
	assembler, err := NewAssembler()
	if err != nil {
		return nil, err
	}
	r, err := daterange.New(q.Start, q.End)
	if err != nil {
		return nil, err
	}
	listing := q.Listing.Build()
	breakdown, err := assembler.Assemble(pricing.Request{
		Schedule:        listing.Schedule,
		Range:           r,
		PromoCode:       q.PromoCode,
		InsurancePlanID: q.InsurancePlanID,
		Delivery:        q.Delivery,
	})
	if err != nil {
		return nil, err
	}
	return &shared.Priced{Listing: listing, Range: r, Breakdown: breakdown}, nil
}
