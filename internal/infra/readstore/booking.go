package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

import (
	"context"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra"
	"rental-pricing-engine/internal/infra/converter"
	"rental-pricing-engine/internal/infra/db"
	"rental-pricing-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Booking, error)
	CountOverlappingBookings(ctx context.Context, db db.DBTX, equipmentID string, start, end time.Time) (int64, error)
	ListBookedRanges(ctx context.Context, db db.DBTX, equipmentID string, from, to time.Time) ([]db.BookedRange, error)
}

// BookingReadStore serves booking lookups and the availability questions
// asked while validating and rendering date ranges.
type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
	plans   *insurance.Catalog
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX, plans *insurance.Catalog) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		plans:   plans,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*pricing.BookingDetails, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	details, err := converter.BookingFromInfra(row, r.plans)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return details, nil
}

func (r *BookingReadStore) IsFree(ctx context.Context, equipmentID string, rng daterange.Range) (bool, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, equipmentID, rng.Start, rng.End)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return n == 0, nil
}

func (r *BookingReadStore) BookedRanges(ctx context.Context, equipmentID string, from, to time.Time) ([]daterange.Range, error) {
	rows, err := r.queries.ListBookedRanges(ctx, r.db, equipmentID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}

	result := make([]daterange.Range, len(rows))
	for i, row := range rows {
		result[i] = daterange.Range{Start: daterange.Date(row.StartDate), End: daterange.Date(row.EndDate)}
	}
	return result, nil
}
