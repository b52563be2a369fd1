package response

import (
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/usecase/queries"
	"rental-pricing-engine/internal/usecase/shared"
)

type BreakdownResponse struct {
	DayCount         int    `json:"dayCount"`
	Tier             string `json:"tier"`
	NaiveTotal       string `json:"naiveTotal"`
	BasePrice        string `json:"basePrice"`
	DurationDiscount string `json:"durationDiscount"`
	PromoCode        string `json:"promoCode,omitempty"`
	PromoStatus      string `json:"promoStatus,omitempty"`
	PromoDiscount    string `json:"promoDiscount"`
	DiscountedBase   string `json:"discountedBase"`
	InsurancePlanID  string `json:"insurancePlanId,omitempty"`
	InsuranceAmount  string `json:"insuranceAmount"`
	Delivery         bool   `json:"delivery"`
	DeliveryFee      string `json:"deliveryFee"`
	ServiceFee       string `json:"serviceFee"`
	Deposit          string `json:"deposit"`
	Total            string `json:"total"`
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	var res BreakdownResponse
	copyInto(&res, &b)
	return res
}

type InsurancePlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rate     string   `json:"rate"`
	Coverage string   `json:"coverage"`
	Features []string `json:"features"`
}

func FromInsurancePlan(p insurance.Plan) InsurancePlanResponse {
	var res InsurancePlanResponse
	copyInto(&res, &p)
	if res.Features == nil {
		res.Features = []string{}
	}
	return res
}

func FromInsurancePlans(plans []insurance.Plan) []InsurancePlanResponse {
	res := make([]InsurancePlanResponse, len(plans))
	for i, p := range plans {
		res[i] = FromInsurancePlan(p)
	}
	return res
}

type QuoteResponse struct {
	EquipmentID   string            `json:"equipmentId"`
	EquipmentName string            `json:"equipmentName"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	Breakdown     BreakdownResponse `json:"breakdown"`
}

func FromPriced(p *shared.Priced) *QuoteResponse {
	return &QuoteResponse{
		EquipmentID:   p.Listing.ID,
		EquipmentName: p.Listing.Name,
		StartDate:     date(p.Range.Start),
		EndDate:       date(p.Range.End),
		Breakdown:     FromBreakdown(p.Breakdown),
	}
}

type RejectionResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SelectionResponse struct {
	State     string             `json:"state"`
	Start     *string            `json:"start,omitempty"`
	End       *string            `json:"end,omitempty"`
	Quote     *QuoteResponse     `json:"quote,omitempty"`
	Rejection *RejectionResponse `json:"rejection,omitempty"`
}

// FromSelectionView renders one picker step. The handler resolves the
// rejection's reason code and message.
func FromSelectionView(v *queries.SelectionView, rejection *RejectionResponse) *SelectionResponse {
	res := &SelectionResponse{
		State:     string(v.State),
		Start:     optionalDate(v.Selection.Start),
		End:       optionalDate(v.Selection.End),
		Rejection: rejection,
	}
	if v.Quote != nil {
		res.Quote = FromPriced(v.Quote)
	}
	return res
}
