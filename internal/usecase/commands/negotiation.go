package commands

//go:generate mockgen -source=negotiation.go -destination=../../../tests/mock/commands/negotiation.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/pkg/clock"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/idgen"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

type StartNegotiationResult struct {
	Session   *negotiation.Session
	Breakdown pricing.Breakdown
	Resumed   bool
}

// OfferResult carries the renter's offer and, unless the wait was cut
// short, the owner's reply.
type OfferResult struct {
	Session       *negotiation.Session
	RenterOffer   negotiation.Offer
	OwnerResponse *negotiation.Offer
	Decision      *negotiation.Decision
}

type NegotiationCommands interface {
	Start(ctx context.Context, req StartNegotiationRequest) (*StartNegotiationResult, error)
	SubmitOffer(ctx context.Context, id uuid.UUID, amount decimal.Decimal, message string) (*OfferResult, error)
	AcceptCurrent(ctx context.Context, id uuid.UUID) (*negotiation.Session, error)
	Reject(ctx context.Context, id uuid.UUID, by negotiation.Role, reason string) (*negotiation.Session, error)
	ExpireIdle(ctx context.Context) (int, error)
}

type negotiationCommandsImpl struct {
	pricer  *shared.Pricer
	store   shared.SessionStore
	policy  negotiation.Policy
	delay   negotiation.ResponseDelay
	idleTTL time.Duration
	metrics shared.MetricsRecorder
	ids     idgen.Generator
	clock   clock.Clock

	mu    sync.Mutex
	locks map[uuid.UUID]*semaphore.Weighted
}

func NewNegotiationCommands(
	pricer *shared.Pricer,
	store shared.SessionStore,
	policy negotiation.Policy,
	delay negotiation.ResponseDelay,
	idleTTL time.Duration,
	metrics shared.MetricsRecorder,
	ids idgen.Generator,
	clk clock.Clock,
) NegotiationCommands {
	return &negotiationCommandsImpl{
		pricer:  pricer,
		store:   store,
		policy:  policy,
		delay:   delay,
		idleTTL: idleTTL,
		metrics: metrics,
		ids:     ids,
		clock:   clk,
		locks:   make(map[uuid.UUID]*semaphore.Weighted),
	}
}

func (n *negotiationCommandsImpl) Start(ctx context.Context, req StartNegotiationRequest) (*StartNegotiationResult, error) {
	priced, err := n.pricer.Price(ctx, shared.PriceInput{
		EquipmentID:     req.EquipmentID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PromoCode:       req.PromoCode,
		InsurancePlanID: req.InsurancePlanID,
		Delivery:        req.Delivery,
	})
	if err != nil {
		return nil, err
	}
	b := priced.Breakdown

	existing, err := n.store.FindActive(ctx, req.EquipmentID, req.RenterID)
	switch {
	case err == nil:
		if existing.Period.Equal(priced.Range) && existing.OriginalTotal.Equal(b.Total) {
			return &StartNegotiationResult{Session: existing, Breakdown: b, Resumed: true}, nil
		}
		if err := n.expire(ctx, existing.ID, "superseded by a new quote"); err != nil {
			return nil, err
		}
	case !errs.Is(err, shared.ErrSessionNotFound):
		return nil, errs.Wrap(err, "failed to look up active session")
	}

	s, err := negotiation.NewSession(n.ids.NewID(), req.EquipmentID, req.RenterID, priced.Range, b.Total, n.clock.Now())
	if err != nil {
		return nil, shared.Classify(err)
	}
	if err := n.store.Create(ctx, s); err != nil {
		return nil, errs.Wrap(err, "failed to store session")
	}

	slog.Info("negotiation started",
		"session_id", s.ID,
		"equipment_id", s.EquipmentID,
		"renter_id", s.RenterID,
		"original_total", s.OriginalTotal.StringFixed(2))

	return &StartNegotiationResult{Session: s, Breakdown: b}, nil
}

func (n *negotiationCommandsImpl) SubmitOffer(ctx context.Context, id uuid.UUID, amount decimal.Decimal, message string) (*OfferResult, error) {
	release, err := n.acquire(id)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, _, err := n.resolvePending(ctx, id); err != nil {
		return nil, err
	}

	var offer negotiation.Offer
	var submitErr error
	s, err := n.store.Update(ctx, id, func(s *negotiation.Session) error {
		o, err := n.policy.Submit(s, n.ids.NewID(), amount, message, n.clock.Now())
		if errs.Is(err, negotiation.ErrRoundLimitReached) {
			// The expiry must be persisted even though the offer is declined.
			submitErr = err
			return nil
		}
		offer = o
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	if submitErr != nil {
		n.metrics.NegotiationClosed(string(s.Status))
		slog.Info("negotiation expired at round limit", "session_id", id, "rounds", s.RoundCount)
		return nil, shared.Classify(submitErr)
	}

	if err := n.delay.Wait(ctx); err != nil {
		slog.Warn("owner response interrupted; offer left pending",
			"session_id", id,
			"offer_id", offer.ID,
			"error", err)
		return nil, errs.Wrap(err, "waiting for owner response")
	}

	s, reply, err := n.resolvePending(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &OfferResult{Session: s, RenterOffer: offer}
	if reply != nil {
		result.OwnerResponse = &reply.offer
		result.Decision = &reply.decision
	}
	return result, nil
}

func (n *negotiationCommandsImpl) AcceptCurrent(ctx context.Context, id uuid.UUID) (*negotiation.Session, error) {
	release, err := n.acquire(id)
	if err != nil {
		return nil, err
	}
	defer release()

	s, _, err := n.resolvePending(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Status == negotiation.StatusAccepted {
		return s, nil
	}

	s, err = n.store.Update(ctx, id, func(s *negotiation.Session) error {
		return s.AcceptCurrent(n.clock.Now())
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	n.closed(s)
	return s, nil
}

func (n *negotiationCommandsImpl) Reject(ctx context.Context, id uuid.UUID, by negotiation.Role, reason string) (*negotiation.Session, error) {
	s, err := n.store.Update(ctx, id, func(s *negotiation.Session) error {
		return s.Reject(by, reason, n.clock.Now())
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	n.closed(s)
	return s, nil
}

// ExpireIdle closes every active session without activity for the idle TTL
// and reports how many were closed.
func (n *negotiationCommandsImpl) ExpireIdle(ctx context.Context) (int, error) {
	now := n.clock.Now()
	ids, err := n.store.ListIdle(ctx, n.idleTTL, now)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list idle sessions")
	}

	expired := 0
	reason := fmt.Sprintf("idle for %s", n.idleTTL)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		_, err := n.store.Update(ctx, id, func(s *negotiation.Session) error {
			if !s.IdleFor(n.idleTTL, now) {
				return negotiation.ErrSessionClosed
			}
			return s.Expire(reason, now)
		})
		if errs.Is(err, negotiation.ErrSessionClosed) {
			continue
		}
		if err != nil {
			return expired, errs.Wrapf(err, "failed to expire session %s", id)
		}
		expired++
		n.metrics.NegotiationClosed(string(negotiation.StatusExpired))
		n.forget(id)
	}
	return expired, nil
}

type ownerReply struct {
	offer    negotiation.Offer
	decision negotiation.Decision
}

// resolvePending applies the owner's response to an offer left awaiting one.
// A session with nothing pending is returned unchanged with a nil reply.
func (n *negotiationCommandsImpl) resolvePending(ctx context.Context, id uuid.UUID) (*negotiation.Session, *ownerReply, error) {
	var reply *ownerReply
	s, err := n.store.Update(ctx, id, func(s *negotiation.Session) error {
		if !s.AwaitingResponse || s.Status.Terminal() {
			return nil
		}
		d, err := s.PendingDecision()
		if err != nil {
			return err
		}
		o, err := s.ApplyOwnerResponse(d, n.ids.NewID(), n.clock.Now())
		if err != nil {
			return err
		}
		reply = &ownerReply{offer: o, decision: d}
		return nil
	})
	if err != nil {
		return nil, nil, shared.Classify(err)
	}

	if reply != nil {
		n.metrics.OfferDecided(string(reply.decision.Outcome), string(reply.decision.Reason))
		slog.Info("owner responded",
			"session_id", id,
			"round", s.RoundCount,
			"outcome", reply.decision.Outcome,
			"reason", reply.decision.Reason,
			"discount_pct", reply.decision.DiscountPct.StringFixed(2),
			"amount", reply.decision.Amount.StringFixed(2))
		if s.Status.Terminal() {
			n.closed(s)
		}
	}
	return s, reply, nil
}

func (n *negotiationCommandsImpl) expire(ctx context.Context, id uuid.UUID, reason string) error {
	s, err := n.store.Update(ctx, id, func(s *negotiation.Session) error {
		return s.Expire(reason, n.clock.Now())
	})
	if errs.Is(err, negotiation.ErrSessionClosed) {
		return nil
	}
	if err != nil {
		return shared.Classify(err)
	}
	n.closed(s)
	return nil
}

func (n *negotiationCommandsImpl) closed(s *negotiation.Session) {
	n.metrics.NegotiationClosed(string(s.Status))
	slog.Info("negotiation closed",
		"session_id", s.ID,
		"status", s.Status,
		"closed_by", s.ClosedBy,
		"reason", s.CloseReason,
		"rounds", s.RoundCount)
	n.forget(s.ID)
}

// acquire grants the single in-flight slot for a session.
func (n *negotiationCommandsImpl) acquire(id uuid.UUID) (func(), error) {
	n.mu.Lock()
	sem, ok := n.locks[id]
	if !ok {
		sem = semaphore.NewWeighted(1)
		n.locks[id] = sem
	}
	n.mu.Unlock()

	if !sem.TryAcquire(1) {
		return nil, shared.Classify(shared.ErrOfferInFlight)
	}
	return func() { sem.Release(1) }, nil
}

func (n *negotiationCommandsImpl) forget(id uuid.UUID) {
	n.mu.Lock()
	delete(n.locks, id)
	n.mu.Unlock()
}
