package commands

import (
	"time"

	"github.com/google/uuid"
)

// Command inputs carry plain values; handlers translate wire formats before
// calling in.

type StartNegotiationRequest struct {
	EquipmentID     string
	RenterID        string
	StartDate       time.Time
	EndDate         time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
}

type CreateBookingRequest struct {
	EquipmentID     string
	RenterID        string
	StartDate       time.Time
	EndDate         time.Time
	PromoCode       string
	InsurancePlanID string
	Delivery        bool
	DeliveryAddress string
	Notes           string
	NegotiationID   *uuid.UUID
}
