package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *pricing.BookingDetails) (uuid.UUID, error)
	HasOverlap(ctx context.Context, tx db.DBTX, equipmentID string, r daterange.Range) (bool, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.BookingDetails, error)
}

// AvailabilityReadStore answers "is this range free" and lists booked
// ranges for calendar rendering.
type AvailabilityReadStore interface {
	daterange.AvailabilityChecker
	BookedRanges(ctx context.Context, equipmentID string, from, to time.Time) ([]daterange.Range, error)
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id string) (*Listing, error)
}

// SessionStore hands out copies; Update applies fn atomically and persists
// the result only when fn returns nil.
type SessionStore interface {
	Create(ctx context.Context, s *negotiation.Session) error
	Get(ctx context.Context, id uuid.UUID) (*negotiation.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(s *negotiation.Session) error) (*negotiation.Session, error)
	FindActive(ctx context.Context, equipmentID, renterID string) (*negotiation.Session, error)
	ListIdle(ctx context.Context, ttl time.Duration, now time.Time) ([]uuid.UUID, error)
}

type MetricsRecorder interface {
	QuoteComputed(tier, promoStatus string)
	OfferDecided(outcome, reason string)
	NegotiationClosed(status string)
	BookingCreated(negotiated bool)
}

type NopMetrics struct{}

func (NopMetrics) QuoteComputed(string, string) {}
func (NopMetrics) OfferDecided(string, string)  {}
func (NopMetrics) NegotiationClosed(string)     {}
func (NopMetrics) BookingCreated(bool)          {}
