package shared

import (
	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/money"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrSessionNotFound         = errs.New("negotiation session not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrOfferInFlight           = errs.New("an offer for this session is still awaiting the owner's response")
	ErrNegotiationNotAccepted  = errs.New("negotiation has not been accepted")
	ErrNegotiationMismatch     = errs.New("negotiation does not match the booking")
	ErrNegotiationUsed         = errs.New("negotiation has already been used for a booking")
	ErrDeliveryAddressRequired = errs.New("delivery address is required when delivery is chosen")
)

// categories maps every sentinel the usecases may surface to an error class.
var categories = []struct {
	category error
	members  []error
}{
	{
		category: errs.ErrInvalidInput,
		members: []error{
			daterange.ErrInvalidRange, daterange.ErrMissingDate, daterange.ErrMalformedDate,
			rate.ErrInvalidDayCount,
			promo.ErrInvalidCode,
			insurance.ErrUnknownPlan,
			negotiation.ErrInvalidOffer, negotiation.ErrInvalidRole,
			money.ErrInvalidAmount,
			ErrDeliveryAddressRequired,
		},
	},
	{
		category: errs.ErrPolicyRejected,
		members: []error{
			daterange.ErrDateInPast, daterange.ErrDayCountOutOfRange, daterange.ErrRangeUnavailable,
			negotiation.ErrRoundLimitReached,
			ErrNegotiationNotAccepted, ErrNegotiationMismatch,
		},
	},
	{
		category: errs.ErrCollaboratorData,
		members: []error{
			rate.ErrInvalidDailyRate, rate.ErrInvalidTierRate, rate.ErrNegativeDeposit, rate.ErrInvalidRentalLimit,
			negotiation.ErrInvalidOriginalTotal,
		},
	},
	{
		category: errs.ErrNotFound,
		members:  []error{ErrListingNotFound, ErrSessionNotFound, ErrBookingNotFound},
	},
	{
		category: errs.ErrConflict,
		members: []error{
			negotiation.ErrSessionClosed, negotiation.ErrResponsePending, negotiation.ErrNoPendingOffer,
			ErrOfferInFlight, ErrNegotiationUsed,
		},
	},
}

// Classify marks err with its error class so the HTTP layer can map it
// without knowing individual sentinels. Unknown errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if errs.Is(err, c.category) {
			return err
		}
		for _, m := range c.members {
			if errs.Is(err, m) {
				return errs.Mark(err, c.category)
			}
		}
	}
	return err
}
