package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*pricing.BookingDetails, error)
}

type bookingQueriesImpl struct {
	store shared.BookingReadStore
}

func NewBookingQueries(store shared.BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*pricing.BookingDetails, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.Classify(shared.ErrBookingNotFound)
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find booking"), errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}
