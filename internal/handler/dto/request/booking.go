package request

import (
	"strings"

	"rental-pricing-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required,max=64"`
	RenterID    string `json:"renterId" binding:"required,max=64"`
	DateRange
	PricingOptions
	DeliveryAddress string     `json:"deliveryAddress,omitempty" binding:"max=500"`
	Notes           string     `json:"notes,omitempty" binding:"max=1000"`
	NegotiationID   *uuid.UUID `json:"negotiationId,omitempty"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	start, end, err := r.Parse()
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		EquipmentID:     r.EquipmentID,
		RenterID:        r.RenterID,
		StartDate:       start,
		EndDate:         end,
		PromoCode:       r.promoCode(),
		InsurancePlanID: r.InsurancePlanID,
		Delivery:        r.Delivery,
		DeliveryAddress: strings.TrimSpace(r.DeliveryAddress),
		Notes:           strings.TrimSpace(r.Notes),
		NegotiationID:   r.NegotiationID,
	}, nil
}
