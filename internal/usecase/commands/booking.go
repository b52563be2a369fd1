package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/infra"
	"rental-pricing-engine/internal/pkg/clock"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/idgen"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*pricing.BookingDetails, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	pricer   *shared.Pricer
	sessions shared.SessionStore
	metrics  shared.MetricsRecorder
	ids      idgen.Generator
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	pricer *shared.Pricer,
	sessions shared.SessionStore,
	metrics shared.MetricsRecorder,
	ids idgen.Generator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		pricer:   pricer,
		sessions: sessions,
		metrics:  metrics,
		ids:      ids,
		clock:    clk,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*pricing.BookingDetails, error) {
	address := strings.TrimSpace(req.DeliveryAddress)
	if req.Delivery && address == "" {
		return nil, shared.Classify(shared.ErrDeliveryAddressRequired)
	}

	priced, err := b.pricer.Price(ctx, shared.PriceInput{
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

	details := &pricing.BookingDetails{
		ID:            b.ids.NewID(),
		EquipmentID:   req.EquipmentID,
		RenterID:      req.RenterID,
		StartDate:     priced.Range.Start,
		EndDate:       priced.Range.End,
		TotalDays:     priced.Range.DayCount(),
		Breakdown:     priced.Breakdown,
		Delivery:      req.Delivery,
		Notes:         strings.TrimSpace(req.Notes),
		NegotiationID: req.NegotiationID,
		CreatedAt:     b.clock.Now().UTC(),
	}
	if req.Delivery {
		details.DeliveryAddress = address
	}
	if priced.Breakdown.PromoStatus == pricing.PromoApplied {
		details.PromoCode = string(priced.Breakdown.PromoCode)
	}
	if req.InsurancePlanID != "" {
		plan, err := b.pricer.Assembler().FindInsurancePlan(req.InsurancePlanID)
		if err != nil {
			return nil, shared.Classify(err)
		}
		details.Insurance = &plan
	}

	if req.NegotiationID != nil {
		agreed, err := b.agreedTotal(ctx, details, priced.Range)
		if err != nil {
			return nil, err
		}
		details.NegotiatedTotal = &agreed
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlap, err := tx.Bookings().HasOverlap(ctx, tx.DB(), details.EquipmentID, priced.Range)
		if err != nil {
			return err
		}
		if overlap {
			return daterange.ErrRangeUnavailable
		}
		id, err := tx.Bookings().Create(ctx, tx.DB(), details)
		if err != nil {
			return err
		}
		details.ID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) && req.NegotiationID != nil {
			return nil, shared.Classify(shared.ErrNegotiationUsed)
		}
		if infra.IsKind(err, infra.KindConflict) {
			return nil, shared.Classify(daterange.ErrRangeUnavailable)
		}
		if errs.Is(err, daterange.ErrRangeUnavailable) {
			return nil, shared.Classify(err)
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to store booking"), errs.ErrDatabaseOperationFailed)
	}

	b.metrics.BookingCreated(details.NegotiatedTotal != nil)
	slog.Info("booking created",
		"booking_id", details.ID,
		"equipment_id", details.EquipmentID,
		"renter_id", details.RenterID,
		"range", priced.Range.String(),
		"amount_due", details.AmountDue().StringFixed(2))

	return details, nil
}

// agreedTotal checks the referenced negotiation closed with a deal on this
// exact quote: same equipment, renter, dates and original total.
func (b *bookingCommandsImpl) agreedTotal(ctx context.Context, details *pricing.BookingDetails, r daterange.Range) (decimal.Decimal, error) {
	s, err := b.sessions.Get(ctx, *details.NegotiationID)
	if err != nil {
		return decimal.Zero, shared.Classify(err)
	}
	agreed, ok := s.AgreedTotal()
	if !ok {
		return decimal.Zero, shared.Classify(errs.Wrapf(shared.ErrNegotiationNotAccepted, "session is %s", s.Status))
	}
	if s.EquipmentID != details.EquipmentID || s.RenterID != details.RenterID || !s.Period.Equal(r) {
		return decimal.Zero, shared.Classify(shared.ErrNegotiationMismatch)
	}
	if !s.OriginalTotal.Equal(details.Breakdown.Total) {
		return decimal.Zero, shared.Classify(errs.Wrapf(shared.ErrNegotiationMismatch,
			"negotiated on %s, quote is %s", s.OriginalTotal.StringFixed(2), details.Breakdown.Total.StringFixed(2)))
	}
	return agreed, nil
}
