package negotiation

import (
	"github.com/shopspring/decimal"
)

type Outcome string

const (
	OutcomeAccept  Outcome = "accept"
	OutcomeCounter Outcome = "counter"
)

type Reason string

const (
	ReasonWithinTolerance  Reason = "within_tolerance"
	ReasonPersistentOffer  Reason = "persistent_offer"
	ReasonSteepDiscount    Reason = "steep_discount"
	ReasonModerateDiscount Reason = "moderate_discount"
)

var (
	autoAcceptPct      = decimal.NewFromInt(5)
	lateAcceptPct      = decimal.NewFromInt(15)
	steepPct           = decimal.NewFromInt(30)
	counterFactor      = decimal.RequireFromString("0.6")
	maxCounterPct      = decimal.NewFromInt(20)
	lateAcceptMinRound = 2
	hundred            = decimal.NewFromInt(100)
)

// Decision is the owner's answer to a single renter offer.
type Decision struct {
	Outcome     Outcome
	Reason      Reason
	Amount      decimal.Decimal
	DiscountPct decimal.Decimal
}

// Decide is the owner response rule. roundCount is the number of renter
// offers made before this one.
func Decide(originalTotal decimal.Decimal, roundCount int, amount decimal.Decimal) (Decision, error) {
	if !originalTotal.IsPositive() {
		return Decision{}, ErrInvalidOriginalTotal
	}
	if !amount.IsPositive() || amount.GreaterThanOrEqual(originalTotal) {
		return Decision{}, ErrInvalidOffer
	}

	pct := hundred.Mul(decimal.NewFromInt(1).Sub(amount.Div(originalTotal)))
	d := Decision{DiscountPct: pct}

	switch {
	case pct.LessThanOrEqual(autoAcceptPct):
		d.Outcome, d.Reason, d.Amount = OutcomeAccept, ReasonWithinTolerance, amount
	case pct.LessThanOrEqual(lateAcceptPct) && roundCount >= lateAcceptMinRound:
		d.Outcome, d.Reason, d.Amount = OutcomeAccept, ReasonPersistentOffer, amount
	default:
		d.Outcome = OutcomeCounter
		d.Reason = ReasonModerateDiscount
		if pct.GreaterThan(steepPct) {
			d.Reason = ReasonSteepDiscount
		}
		d.Amount = CounterOffer(originalTotal, pct)
	}
	return d, nil
}

// CounterOffer concedes 60% of the requested discount, capped at 20% off.
func CounterOffer(originalTotal, requestedPct decimal.Decimal) decimal.Decimal {
	concession := decimal.Min(requestedPct.Mul(counterFactor), maxCounterPct)
	return originalTotal.Mul(decimal.NewFromInt(1).Sub(concession.Div(hundred)))
}
