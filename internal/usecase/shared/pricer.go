package shared

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/pkg/clock"
	"rental-pricing-engine/internal/pkg/errs"
)

type PriceInput struct {
	EquipmentID     string
	StartDate       time.Time
	EndDate         time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
}

type Priced struct {
	Listing   *Listing
	Range     daterange.Range
	Breakdown pricing.Breakdown
}

// Pricer runs the listing lookup, range validation and breakdown assembly
// shared by quotes, negotiations and bookings.
type Pricer struct {
	listings     ListingReadStore
	availability AvailabilityReadStore
	assembler    *pricing.Assembler
	clock        clock.Clock
}

func NewPricer(listings ListingReadStore, availability AvailabilityReadStore, assembler *pricing.Assembler, clk clock.Clock) *Pricer {
	return &Pricer{
		listings:     listings,
		availability: availability,
		assembler:    assembler,
		clock:        clk,
	}
}

func (p *Pricer) Assembler() *pricing.Assembler {
	return p.assembler
}

func (p *Pricer) Today() time.Time {
	return clock.Today(p.clock)
}

// Validator loads the listing and builds a validator for it as of today.
func (p *Pricer) Validator(ctx context.Context, equipmentID string) (*Listing, daterange.Validator, error) {
	listing, err := p.listings.FindByID(ctx, equipmentID)
	if err != nil {
		return nil, daterange.Validator{}, Classify(err)
	}
	if err := listing.Schedule.Validate(); err != nil {
		return nil, daterange.Validator{}, Classify(errs.Wrapf(err, "listing %s", equipmentID))
	}
	var checker daterange.AvailabilityChecker
	if p.availability != nil {
		checker = p.availability
	}
	return listing, daterange.NewValidator(p.Today(), listing.Schedule, listing.ID, checker), nil
}

func (p *Pricer) Price(ctx context.Context, in PriceInput) (*Priced, error) {
	listing, v, err := p.Validator(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}

	r, err := v.ValidateRange(ctx, in.StartDate, in.EndDate)
	if err != nil {
		return nil, Classify(err)
	}

	b, err := p.assembler.Assemble(pricing.Request{
		Schedule:        listing.Schedule,
		Range:           r,
		PromoCode:       in.PromoCode,
		InsurancePlanID: in.InsurancePlanID,
		Delivery:        in.Delivery,
	})
	if err != nil {
		return nil, Classify(err)
	}

	return &Priced{Listing: listing, Range: r, Breakdown: b}, nil
}
