package queries

//go:generate mockgen -source=negotiation.go -destination=../../../tests/mock/queries/negotiation.go -package=queriesmock

import (
	"context"

	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type NegotiationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*negotiation.Session, error)
}

type negotiationQueriesImpl struct {
	store shared.SessionStore
}

func NewNegotiationQueries(store shared.SessionStore) NegotiationQueries {
	return &negotiationQueriesImpl{store: store}
}

func (q *negotiationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*negotiation.Session, error) {
	s, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return s, nil
}
