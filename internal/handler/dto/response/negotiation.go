package response

import (
	"time"

	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/commands"
)

type OfferResponse struct {
	ID         string    `json:"id"`
	Amount     string    `json:"amount"`
	SenderRole string    `json:"senderRole"`
	Message    string    `json:"message,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromOffer(o negotiation.Offer) OfferResponse {
	var res OfferResponse
	copyInto(&res, &o)
	return res
}

type SessionResponse struct {
	ID               string          `json:"id"`
	EquipmentID      string          `json:"equipmentId"`
	RenterID         string          `json:"renterId"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	RentalDays       int             `json:"rentalDays"`
	OriginalTotal    string          `json:"originalTotal"`
	CurrentOffer     string          `json:"currentOffer"`
	Status           string          `json:"status"`
	RoundCount       int             `json:"roundCount"`
	AwaitingResponse bool            `json:"awaitingResponse"`
	ClosedBy         string          `json:"closedBy,omitempty"`
	CloseReason      string          `json:"closeReason,omitempty"`
	History          []OfferResponse `json:"history"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromSession(s *negotiation.Session) *SessionResponse {
	res := &SessionResponse{
		ID:               s.ID.String(),
		EquipmentID:      s.EquipmentID,
		RenterID:         s.RenterID,
		StartDate:        date(s.Period.Start),
		EndDate:          date(s.Period.End),
		RentalDays:       s.RentalDays,
		OriginalTotal:    money.Display(s.OriginalTotal),
		CurrentOffer:     money.Display(s.CurrentOffer),
		Status:           string(s.Status),
		RoundCount:       s.RoundCount,
		AwaitingResponse: s.AwaitingResponse,
		ClosedBy:         string(s.ClosedBy),
		CloseReason:      s.CloseReason,
		History:          make([]OfferResponse, len(s.History)),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	for i, o := range s.History {
		res.History[i] = FromOffer(o)
	}
	return res
}

type StartNegotiationResponse struct {
	Session   *SessionResponse  `json:"session"`
	Breakdown BreakdownResponse `json:"breakdown"`
	Resumed   bool              `json:"resumed"`
}

func FromStartNegotiationResult(r *commands.StartNegotiationResult) *StartNegotiationResponse {
	return &StartNegotiationResponse{
		Session:   FromSession(r.Session),
		Breakdown: FromBreakdown(r.Breakdown),
		Resumed:   r.Resumed,
	}
}

type DecisionResponse struct {
	Outcome         string `json:"outcome"`
	Reason          string `json:"reason"`
	Amount          string `json:"amount"`
	DiscountPercent string `json:"discountPercent"`
}

type OfferResultResponse struct {
	Session       *SessionResponse  `json:"session"`
	RenterOffer   OfferResponse     `json:"renterOffer"`
	OwnerResponse *OfferResponse    `json:"ownerResponse,omitempty"`
	Decision      *DecisionResponse `json:"decision,omitempty"`
}

func FromOfferResult(r *commands.OfferResult) *OfferResultResponse {
	res := &OfferResultResponse{
		Session:     FromSession(r.Session),
		RenterOffer: FromOffer(r.RenterOffer),
	}
	if r.OwnerResponse != nil {
		o := FromOffer(*r.OwnerResponse)
		res.OwnerResponse = &o
	}
	if r.Decision != nil {
		res.Decision = &DecisionResponse{
			Outcome:         string(r.Decision.Outcome),
			Reason:          string(r.Decision.Reason),
			Amount:          money.Display(r.Decision.Amount),
			DiscountPercent: money.Display(r.Decision.DiscountPct),
		}
	}
	return res
}
