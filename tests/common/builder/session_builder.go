//go:build unit || e2e

package builder

import (
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/google/uuid"
)

// SessionBuilder defaults to an open negotiation over the 3150 quote used
// throughout the negotiation scenarios.
type SessionBuilder struct {
	ID            uuid.UUID
	EquipmentID   string
	RenterID      string
	StartDate     time.Time
	EndDate       time.Time
	OriginalTotal string
	CreatedAt     time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:            uuid.New(),
		EquipmentID:   "excavator-mini-01",
		RenterID:      "renter-1",
		StartDate:     daterange.NewDate(2026, time.March, 2),
		EndDate:       daterange.NewDate(2026, time.March, 8),
		OriginalTotal: "3150",
		CreatedAt:     time.Date(2026, time.February, 20, 9, 30, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) Build() (*negotiation.Session, error) {
	period, err := daterange.New(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return negotiation.NewSession(b.ID, b.EquipmentID, b.RenterID, period, money.MustParse(b.OriginalTotal), b.CreatedAt)
}
