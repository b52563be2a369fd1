package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/shared"
)

type QuoteRequest = shared.PriceInput

type ClickRequest struct {
	EquipmentID     string
	Start           *time.Time
	End             *time.Time
	Date            time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
}

// SelectionView is the picker state after one click. Quote is set once the
// selection is complete and priceable; Rejection explains why it is not.
type SelectionView struct {
	Selection daterange.Selection
	State     daterange.SelectionState
	Quote     *shared.Priced
	Rejection error
}

type PricingQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*shared.Priced, error)
	InsurancePlans(ctx context.Context) []insurance.Plan
	Click(ctx context.Context, req ClickRequest) (*SelectionView, error)
}

type pricingQueriesImpl struct {
	pricer  *shared.Pricer
	metrics shared.MetricsRecorder
}

func NewPricingQueries(pricer *shared.Pricer, metrics shared.MetricsRecorder) PricingQueries {
	return &pricingQueriesImpl{pricer: pricer, metrics: metrics}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*shared.Priced, error) {
	priced, err := q.pricer.Price(ctx, req)
	if err != nil {
		return nil, err
	}
	q.metrics.QuoteComputed(string(priced.Breakdown.Tier), string(priced.Breakdown.PromoStatus))
	return priced, nil
}

func (q *pricingQueriesImpl) InsurancePlans(_ context.Context) []insurance.Plan {
	return q.pricer.Assembler().InsurancePlans()
}

func (q *pricingQueriesImpl) Click(ctx context.Context, req ClickRequest) (*SelectionView, error) {
	_, v, err := q.pricer.Validator(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	current := daterange.Selection{Start: datePtr(req.Start), End: datePtr(req.End)}
	next := current.Click(v, req.Date)
	view := &SelectionView{Selection: next, State: next.State()}

	r, ok := next.Range()
	if !ok {
		return view, nil
	}

	priced, err := q.Quote(ctx, QuoteRequest{
		EquipmentID:     req.EquipmentID,
		StartDate:       r.Start,
		EndDate:         r.End,
		PromoCode:       req.PromoCode,
		InsurancePlanID: req.InsurancePlanID,
		Delivery:        req.Delivery,
	})
	switch {
	case err == nil:
		view.Quote = priced
	case errs.Is(err, errs.ErrPolicyRejected), errs.Is(err, errs.ErrInvalidInput):
		view.Rejection = err
	default:
		return nil, err
	}
	return view, nil
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := daterange.Date(*t)
	return &d
}
