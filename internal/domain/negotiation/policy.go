package negotiation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Policy bounds a negotiation. MaxRounds of 0 allows unlimited rounds.
type Policy struct {
	MaxRounds int
}

// Submit records a renter offer unless the session has used up its rounds,
// in which case the session expires and the offer is declined. An invalid
// amount is rejected first and never expires the session.
func (p Policy) Submit(s *Session, id uuid.UUID, amount decimal.Decimal, message string, now time.Time) (Offer, error) {
	if s.Status.Terminal() {
		return Offer{}, ErrSessionClosed
	}
	if s.AwaitingResponse {
		return Offer{}, ErrResponsePending
	}
	if !s.validOffer(amount) {
		return Offer{}, ErrInvalidOffer
	}
	if p.MaxRounds > 0 && s.RoundCount >= p.MaxRounds {
		if err := s.Expire(fmt.Sprintf("round limit of %d reached", p.MaxRounds), now); err != nil {
			return Offer{}, err
		}
		return Offer{}, ErrRoundLimitReached
	}
	return s.SubmitRenterOffer(id, amount, message, now)
}
