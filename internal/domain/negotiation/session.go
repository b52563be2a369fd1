package negotiation

import (
	"errors"
	"fmt"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOffer         = errors.New("offer must be positive and below the original total")
	ErrInvalidOriginalTotal = errors.New("original total must be positive")
	ErrSessionClosed        = errors.New("negotiation session is closed")
	ErrResponsePending      = errors.New("owner response to the previous offer is still pending")
	ErrNoPendingOffer       = errors.New("no renter offer is awaiting a response")
	ErrRoundLimitReached    = errors.New("negotiation round limit reached")
	ErrInvalidRole          = errors.New("invalid negotiation role")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) Terminal() bool {
	return s != StatusActive
}

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

func (r Role) Valid() bool {
	return r == RoleRenter || r == RoleOwner
}

// Offer is immutable once appended to a session's history.
type Offer struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	SenderRole Role
	Message    string
	Timestamp  time.Time
}

// Session is one haggling thread for an (equipment, renter) pair over the
// quoted Period. CurrentOffer is the owner's standing price: the original total
// until the owner counters or accepts.
type Session struct {
	ID               uuid.UUID
	EquipmentID      string
	RenterID         string
	Period           daterange.Range
	RentalDays       int
	OriginalTotal    decimal.Decimal
	CurrentOffer     decimal.Decimal
	Status           Status
	RoundCount       int
	History          []Offer
	AwaitingResponse bool
	ClosedBy         Role
	CloseReason      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewSession(id uuid.UUID, equipmentID, renterID string, period daterange.Range, originalTotal decimal.Decimal, now time.Time) (*Session, error) {
	if !originalTotal.IsPositive() {
		return nil, ErrInvalidOriginalTotal
	}
	return &Session{
		ID:            id,
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		Period:        period,
		RentalDays:    period.DayCount(),
		OriginalTotal: originalTotal,
		CurrentOffer:  originalTotal,
		Status:        StatusActive,
		History:       []Offer{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SubmitRenterOffer records a renter offer and leaves the session awaiting
// the owner's response. Invalid offers leave the session untouched.
func (s *Session) SubmitRenterOffer(id uuid.UUID, amount decimal.Decimal, message string, now time.Time) (Offer, error) {
	if s.Status.Terminal() {
		return Offer{}, ErrSessionClosed
	}
	if s.AwaitingResponse {
		return Offer{}, ErrResponsePending
	}
	if !s.validOffer(amount) {
		return Offer{}, ErrInvalidOffer
	}

	o := Offer{ID: id, Amount: amount, SenderRole: RoleRenter, Message: message, Timestamp: now}
	s.History = append(s.History, o)
	s.RoundCount++
	s.AwaitingResponse = true
	s.UpdatedAt = now
	return o, nil
}

func (s *Session) validOffer(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThan(s.OriginalTotal)
}

// PendingOffer is the renter offer awaiting a response.
func (s *Session) PendingOffer() (Offer, bool) {
	if !s.AwaitingResponse {
		return Offer{}, false
	}
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].SenderRole == RoleRenter {
			return s.History[i], true
		}
	}
	return Offer{}, false
}

// PendingDecision evaluates the pending offer against the rounds that
// preceded it.
func (s *Session) PendingDecision() (Decision, error) {
	o, ok := s.PendingOffer()
	if !ok {
		return Decision{}, ErrNoPendingOffer
	}
	return Decide(s.OriginalTotal, s.RoundCount-1, o.Amount)
}

// ApplyOwnerResponse appends the owner's reply and advances the session.
func (s *Session) ApplyOwnerResponse(d Decision, id uuid.UUID, now time.Time) (Offer, error) {
	if s.Status.Terminal() {
		return Offer{}, ErrSessionClosed
	}
	if !s.AwaitingResponse {
		return Offer{}, ErrNoPendingOffer
	}

	o := Offer{ID: id, Amount: d.Amount, SenderRole: RoleOwner, Message: ownerMessage(d), Timestamp: now}
	s.History = append(s.History, o)
	s.CurrentOffer = d.Amount
	if d.Outcome == OutcomeAccept {
		s.Status = StatusAccepted
		s.ClosedBy = RoleOwner
	}
	s.AwaitingResponse = false
	s.UpdatedAt = now
	return o, nil
}

// AcceptCurrent closes the deal at the owner's standing price.
func (s *Session) AcceptCurrent(now time.Time) error {
	if s.Status.Terminal() {
		return ErrSessionClosed
	}
	if s.AwaitingResponse {
		return ErrResponsePending
	}
	s.Status = StatusAccepted
	s.ClosedBy = RoleRenter
	s.UpdatedAt = now
	return nil
}

// Reject lets either party walk away, even while a response is pending.
func (s *Session) Reject(by Role, reason string, now time.Time) error {
	if !by.Valid() {
		return ErrInvalidRole
	}
	if s.Status.Terminal() {
		return ErrSessionClosed
	}
	s.Status = StatusRejected
	s.ClosedBy = by
	s.CloseReason = reason
	s.AwaitingResponse = false
	s.UpdatedAt = now
	return nil
}

func (s *Session) Expire(reason string, now time.Time) error {
	if s.Status.Terminal() {
		return ErrSessionClosed
	}
	s.Status = StatusExpired
	s.CloseReason = reason
	s.AwaitingResponse = false
	s.UpdatedAt = now
	return nil
}

// IdleFor reports whether an active session has seen no activity for ttl.
func (s *Session) IdleFor(ttl time.Duration, now time.Time) bool {
	return !s.Status.Terminal() && now.Sub(s.UpdatedAt) >= ttl
}

// AgreedTotal is the final price of an accepted session.
func (s *Session) AgreedTotal() (decimal.Decimal, bool) {
	if s.Status != StatusAccepted {
		return decimal.Zero, false
	}
	return s.CurrentOffer, true
}

func (s *Session) Clone() *Session {
	c := *s
	c.History = append([]Offer(nil), s.History...)
	if c.History == nil {
		c.History = []Offer{}
	}
	return &c
}

func ownerMessage(d Decision) string {
	amount := "$" + money.Display(d.Amount)
	switch d.Reason {
	case ReasonWithinTolerance:
		return fmt.Sprintf("That works for me. Deal at %s.", amount)
	case ReasonPersistentOffer:
		return fmt.Sprintf("You've been persistent. I'll accept %s.", amount)
	case ReasonSteepDiscount:
		return fmt.Sprintf("That's too low for me. The best I can do is %s.", amount)
	default:
		return fmt.Sprintf("I can come down a little. How about %s?", amount)
	}
}
