package pricing

import (
	"time"

	"rental-pricing-engine/internal/domain/insurance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDetails is the record handed to the persistence collaborator once a
// price is final. Payment settlement happens elsewhere.
type BookingDetails struct {
	ID              uuid.UUID
	EquipmentID     string
	RenterID        string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	Breakdown       Breakdown
	Insurance       *insurance.Plan
	Delivery        bool
	DeliveryAddress string
	Notes           string
	PromoCode       string
	NegotiationID   *uuid.UUID
	NegotiatedTotal *decimal.Decimal
	CreatedAt       time.Time
}

// AmountDue is the negotiated total when one was agreed, the breakdown total otherwise.
func (b BookingDetails) AmountDue() decimal.Decimal {
	if b.NegotiatedTotal != nil {
		return *b.NegotiatedTotal
	}
	return b.Breakdown.Total
}
