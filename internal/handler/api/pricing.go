package api

import (
	"net/http"

	reqdto "rental-pricing-engine/internal/handler/dto/request"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary List insurance plans
// @Description Insurance plans offered at checkout
// @Tags pricing
// @Produce json
// @Success 200 {array} resdto.InsurancePlanResponse
// @Router /api/insurance-plans [get]
func (h *PricingHandler) InsurancePlans(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromInsurancePlans(h.q.InsurancePlans(c.Request.Context())))
}

// @Summary Quote a rental
// @Description Itemised price for a date range with optional promo code, insurance and delivery
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	in, err := req.ToQuery()
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	priced, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriced(priced))
}

// @Summary Click a date in the picker
// @Description Advances the date selection by one click and prices it once complete
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ClickRequest true "Current selection and clicked date"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/selection/click [post]
func (h *PricingHandler) Click(c *gin.Context) {
	var req reqdto.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	in, err := req.ToQuery()
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	view, err := h.q.Click(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelectionView(view, rejectionFor(view.Rejection)))
}
