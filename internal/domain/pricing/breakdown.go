package pricing

import (
	"errors"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/domain/rate"

	"github.com/shopspring/decimal"
)

var (
	ErrInvariantViolated   = errors.New("pricing breakdown does not add up")
	ErrNegativeDeliveryFee = errors.New("delivery fee cannot be negative")
)

// ServiceFeeRate is the platform fee on the discounted base price.
var ServiceFeeRate = decimal.RequireFromString("0.12")

type PromoStatus string

const (
	PromoNone     PromoStatus = ""
	PromoApplied  PromoStatus = "applied"
	PromoNotFound PromoStatus = "not_found"
	PromoInvalid  PromoStatus = "invalid"
)

// Breakdown is an itemised price. It is produced fresh for every calculation
// and never mutated afterwards.
//
// BasePrice is the tier-optimised price (NaiveTotal - DurationDiscount) and
// DiscountedBase is BasePrice - PromoDiscount. Insurance and the service fee
// are charged on DiscountedBase; the deposit is passed through unchanged.
type Breakdown struct {
	DayCount         int
	Tier             rate.Tier
	NaiveTotal       decimal.Decimal
	BasePrice        decimal.Decimal
	DurationDiscount decimal.Decimal
	PromoCode        promo.Code
	PromoStatus      PromoStatus
	PromoDiscount    decimal.Decimal
	DiscountedBase   decimal.Decimal
	InsurancePlanID  string
	InsuranceAmount  decimal.Decimal
	Delivery         bool
	DeliveryFee      decimal.Decimal
	ServiceFee       decimal.Decimal
	Deposit          decimal.Decimal
	Total            decimal.Decimal
}

// Verify checks the sum and that no discount exceeds what it discounts.
func (b Breakdown) Verify() error {
	expected := b.NaiveTotal.
		Sub(b.DurationDiscount).
		Sub(b.PromoDiscount).
		Add(b.InsuranceAmount).
		Add(b.DeliveryFee).
		Add(b.ServiceFee).
		Add(b.Deposit)
	if !expected.Equal(b.Total) {
		return ErrInvariantViolated
	}
	if !b.NaiveTotal.Sub(b.DurationDiscount).Equal(b.BasePrice) {
		return ErrInvariantViolated
	}
	if b.DurationDiscount.GreaterThan(b.NaiveTotal) || b.PromoDiscount.GreaterThan(b.BasePrice) {
		return ErrInvariantViolated
	}
	return nil
}

type Request struct {
	Schedule        rate.Schedule
	Range           daterange.Range
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
}

type Assembler struct {
	promos      *promo.Catalog
	plans       *insurance.Catalog
	deliveryFee decimal.Decimal
}

func NewAssembler(promos *promo.Catalog, plans *insurance.Catalog, deliveryFee decimal.Decimal) (*Assembler, error) {
	if deliveryFee.IsNegative() {
		return nil, ErrNegativeDeliveryFee
	}
	return &Assembler{promos: promos, plans: plans, deliveryFee: deliveryFee}, nil
}

func (a *Assembler) InsurancePlans() []insurance.Plan {
	return a.plans.Plans()
}

func (a *Assembler) FindInsurancePlan(id string) (insurance.Plan, error) {
	return a.plans.Find(id)
}

// Assemble prices a range. It refuses ranges outside the schedule's rental
// limits; an unresolvable promo code leaves the price unchanged and is
// reported through PromoStatus.
func (a *Assembler) Assemble(req Request) (Breakdown, error) {
	if err := req.Schedule.Validate(); err != nil {
		return Breakdown{}, err
	}
	dayCount := req.Range.DayCount()
	if !req.Schedule.AllowsDayCount(dayCount) {
		return Breakdown{}, daterange.ErrDayCountOutOfRange
	}

	var plan *insurance.Plan
	if req.InsurancePlanID != "" {
		p, err := a.plans.Find(req.InsurancePlanID)
		if err != nil {
			return Breakdown{}, err
		}
		plan = &p
	}

	q, err := rate.Calculate(req.Schedule, dayCount)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		DayCount:         dayCount,
		Tier:             q.Tier,
		NaiveTotal:       q.NaiveTotal,
		BasePrice:        q.BasePrice,
		DurationDiscount: q.DurationDiscount,
		PromoDiscount:    decimal.Zero,
		InsuranceAmount:  decimal.Zero,
		DeliveryFee:      decimal.Zero,
		Deposit:          req.Schedule.DepositAmount,
	}

	if req.PromoCode != "" {
		redemption := promo.NewRedemption(a.promos)
		discount, err := redemption.Apply(req.PromoCode, q.BasePrice)
		switch {
		case err == nil:
			applied, _ := redemption.Applied()
			b.PromoCode = applied.Code
			b.PromoStatus = PromoApplied
			b.PromoDiscount = discount
		case errors.Is(err, promo.ErrInvalidCode):
			b.PromoStatus = PromoInvalid
		default:
			b.PromoStatus = PromoNotFound
		}
	}

	b.DiscountedBase = b.BasePrice.Sub(b.PromoDiscount)

	if plan != nil {
		b.InsurancePlanID = plan.ID
		b.InsuranceAmount = plan.Premium(b.DiscountedBase)
	}
	if req.Delivery {
		b.Delivery = true
		b.DeliveryFee = a.deliveryFee
	}
	b.ServiceFee = b.DiscountedBase.Mul(ServiceFeeRate)

	b.Total = b.DiscountedBase.
		Add(b.InsuranceAmount).
		Add(b.DeliveryFee).
		Add(b.ServiceFee).
		Add(b.Deposit)

	return b, nil
}
