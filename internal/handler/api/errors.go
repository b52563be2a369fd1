package api

import (
	"net/http"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/domain/rate"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/handler/httperr"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// reasonCodes gives clients a stable code per rejection cause.
var reasonCodes = []struct {
	err  error
	code string
}{
	{daterange.ErrMissingDate, "missing_date"},
	{daterange.ErrMalformedDate, "malformed_date"},
	{daterange.ErrInvalidRange, "invalid_range"},
	{daterange.ErrDateInPast, "date_in_past"},
	{daterange.ErrDayCountOutOfRange, "day_count_out_of_range"},
	{daterange.ErrRangeUnavailable, "range_unavailable"},
	{rate.ErrInvalidDayCount, "invalid_day_count"},
	{promo.ErrInvalidCode, "invalid_promo_code"},
	{insurance.ErrUnknownPlan, "unknown_insurance_plan"},
	{money.ErrInvalidAmount, "invalid_amount"},
	{negotiation.ErrInvalidOffer, "invalid_offer"},
	{negotiation.ErrInvalidRole, "invalid_role"},
	{negotiation.ErrRoundLimitReached, "round_limit_reached"},
	{negotiation.ErrSessionClosed, "negotiation_closed"},
	{negotiation.ErrResponsePending, "response_pending"},
	{negotiation.ErrNoPendingOffer, "no_pending_offer"},
	{shared.ErrOfferInFlight, "offer_in_flight"},
	{shared.ErrNegotiationNotAccepted, "negotiation_not_accepted"},
	{shared.ErrNegotiationMismatch, "negotiation_mismatch"},
	{shared.ErrNegotiationUsed, "negotiation_used"},
	{shared.ErrDeliveryAddressRequired, "delivery_address_required"},
	{shared.ErrListingNotFound, "listing_not_found"},
	{shared.ErrSessionNotFound, "negotiation_not_found"},
	{shared.ErrBookingNotFound, "booking_not_found"},
}

func reasonCode(err error) string {
	for _, rc := range reasonCodes {
		if errs.Is(err, rc.err) {
			return rc.code
		}
	}
	return ""
}

// statusFor maps an error class to an HTTP status. Anything unclassified is
// treated as an internal failure and its message is not exposed.
func statusFor(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, errs.Cause(err).Error()
	case errs.Is(err, errs.ErrPolicyRejected):
		return http.StatusUnprocessableEntity, errs.Cause(err).Error()
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, errs.Cause(err).Error()
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, errs.Cause(err).Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	httperr.AbortWithError(c, status, err, msg, reasonCode(err))
}

// abortWithInvalidRequest answers a request that failed binding or parsing.
func abortWithInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reasonCode(err))
}

func rejectionFor(err error) *resdto.RejectionResponse {
	if err == nil {
		return nil
	}
	return &resdto.RejectionResponse{Code: reasonCode(err), Message: errs.Cause(err).Error()}
}
