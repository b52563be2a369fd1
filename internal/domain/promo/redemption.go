package promo

import (
	"github.com/shopspring/decimal"
)

// Redemption tracks the code applied during one pricing run. At most one code
// may be active; a failed lookup leaves it untouched.
type Redemption struct {
	catalog *Catalog
	applied *Promotion
}

func NewRedemption(catalog *Catalog) *Redemption {
	return &Redemption{catalog: catalog}
}

// Apply resolves raw against the catalog and returns the discount on base.
func (r *Redemption) Apply(raw string, base decimal.Decimal) (decimal.Decimal, error) {
	if r.applied != nil {
		return decimal.Zero, ErrAlreadyApplied
	}
	if _, err := NewCode(raw); err != nil {
		return decimal.Zero, err
	}
	p, ok := r.catalog.Lookup(raw)
	if !ok {
		return decimal.Zero, ErrCodeNotFound
	}
	r.applied = &p
	return Discount(p, base), nil
}

// Applied returns the active promotion, if any.
func (r *Redemption) Applied() (Promotion, bool) {
	if r.applied == nil {
		return Promotion{}, false
	}
	return *r.applied, true
}

// Discount is base x fraction, never more than base.
func Discount(p Promotion, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(base.Mul(p.DiscountFraction), base)
}
