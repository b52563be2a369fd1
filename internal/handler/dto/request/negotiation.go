package request

import (
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type StartNegotiationRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required,max=64"`
	RenterID    string `json:"renterId" binding:"required,max=64"`
	DateRange
	PricingOptions
}

func (r StartNegotiationRequest) ToCommand() (commands.StartNegotiationRequest, error) {
	start, end, err := r.Parse()
	if err != nil {
		return commands.StartNegotiationRequest{}, err
	}
	return commands.StartNegotiationRequest{
		EquipmentID:     r.EquipmentID,
		RenterID:        r.RenterID,
		StartDate:       start,
		EndDate:         end,
		PromoCode:       r.promoCode(),
		InsurancePlanID: r.InsurancePlanID,
		Delivery:        r.Delivery,
	}, nil
}

type OfferRequest struct {
	Amount  string `json:"amount" binding:"required" example:"2950.00"`
	Message string `json:"message" binding:"max=500"`
}

func (r OfferRequest) ParseAmount() (decimal.Decimal, error) {
	return money.Parse(r.Amount)
}

type RejectRequest struct {
	Role   string `json:"role" binding:"required,oneof=renter owner"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r RejectRequest) ToRole() negotiation.Role {
	return negotiation.Role(r.Role)
}
