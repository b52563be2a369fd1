package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra"
	"rental-pricing-engine/internal/infra/converter"
	"rental-pricing-engine/internal/infra/db"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db db.DBTX, arg db.Booking) (uuid.UUID, error)
	CountOverlappingBookings(ctx context.Context, db db.DBTX, equipmentID string, start, end time.Time) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *pricing.BookingDetails) (uuid.UUID, error) {
	params := converter.BookingToInfra(b)

	resultID, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}

// HasOverlap reports whether any stored booking shares a day with r.
func (r *BookingRepository) HasOverlap(ctx context.Context, tx db.DBTX, equipmentID string, rng daterange.Range) (bool, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, tx, equipmentID, rng.Start, rng.End)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return n > 0, nil
}
