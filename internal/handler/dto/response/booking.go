package response

import (
	"time"

	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID              `json:"id"`
	EquipmentID     string                 `json:"equipmentId"`
	RenterID        string                 `json:"renterId"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate"`
	TotalDays       int                    `json:"totalDays"`
	Breakdown       BreakdownResponse      `json:"breakdown"`
	Insurance       *InsurancePlanResponse `json:"insurance,omitempty"`
	Delivery        bool                   `json:"delivery"`
	DeliveryAddress string                 `json:"deliveryAddress,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	PromoCode       string                 `json:"promoCode,omitempty"`
	NegotiationID   *uuid.UUID             `json:"negotiationId,omitempty"`
	NegotiatedTotal *string                `json:"negotiatedTotal,omitempty"`
	AmountDue       string                 `json:"amountDue"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func FromBookingDetails(b *pricing.BookingDetails) *BookingResponse {
	res := &BookingResponse{
		ID:              b.ID,
		EquipmentID:     b.EquipmentID,
		RenterID:        b.RenterID,
		StartDate:       date(b.StartDate),
		EndDate:         date(b.EndDate),
		TotalDays:       b.TotalDays,
		Breakdown:       FromBreakdown(b.Breakdown),
		Delivery:        b.Delivery,
		DeliveryAddress: b.DeliveryAddress,
		Notes:           b.Notes,
		PromoCode:       b.PromoCode,
		NegotiationID:   b.NegotiationID,
		NegotiatedTotal: optionalAmount(b.NegotiatedTotal),
		AmountDue:       money.Display(b.AmountDue()),
		CreatedAt:       b.CreatedAt,
	}
	if b.Insurance != nil {
		plan := FromInsurancePlan(*b.Insurance)
		res.Insurance = &plan
	}
	return res
}
