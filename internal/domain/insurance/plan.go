package insurance

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPlan = errors.New("unknown insurance plan")
	ErrInvalidPlan = errors.New("insurance plan rate must be in (0, 1) and coverage positive")
)

// Plan is an optional damage-protection add-on. Rate is a fraction of the
// discounted base price; Coverage is the payout ceiling.
type Plan struct {
	ID       string
	Name     string
	Rate     decimal.Decimal
	Coverage decimal.Decimal
	Features []string
}

func (p Plan) Validate() error {
	if p.ID == "" || !p.Rate.IsPositive() || p.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) || !p.Coverage.IsPositive() {
		return ErrInvalidPlan
	}
	return nil
}

// Premium is the plan's charge on the discounted base.
func (p Plan) Premium(discountedBase decimal.Decimal) decimal.Decimal {
	return discountedBase.Mul(p.Rate)
}

type Catalog struct {
	plans []Plan
}

func NewCatalog(plans ...Plan) (*Catalog, error) {
	seen := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			return nil, ErrInvalidPlan
		}
		seen[p.ID] = struct{}{}
	}
	return &Catalog{plans: append([]Plan(nil), plans...)}, nil
}

// DefaultCatalog is the plan list offered at checkout.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Plan{
			ID:       "basic",
			Name:     "Basic Protection",
			Rate:     decimal.RequireFromString("0.05"),
			Coverage: decimal.NewFromInt(5000),
			Features: []string{"Accidental damage", "Theft with police report"},
		},
		Plan{
			ID:       "standard",
			Name:     "Standard Protection",
			Rate:     decimal.RequireFromString("0.10"),
			Coverage: decimal.NewFromInt(15000),
			Features: []string{"Accidental damage", "Theft", "Weather damage", "Reduced excess"},
		},
		Plan{
			ID:       "premium",
			Name:     "Premium Protection",
			Rate:     decimal.RequireFromString("0.15"),
			Coverage: decimal.NewFromInt(50000),
			Features: []string{"Full damage cover", "Theft", "Weather damage", "Zero excess", "Replacement equipment"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Find(id string) (Plan, error) {
	for _, p := range c.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}

func (c *Catalog) Plans() []Plan {
	return append([]Plan(nil), c.plans...)
}
