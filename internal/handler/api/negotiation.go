package api

import (
	"net/http"

	reqdto "rental-pricing-engine/internal/handler/dto/request"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/usecase/commands"
	"rental-pricing-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NegotiationHandler struct {
	cmds commands.NegotiationCommands
	q    queries.NegotiationQueries
}

func NewNegotiationHandler(cmds commands.NegotiationCommands, q queries.NegotiationQueries) *NegotiationHandler {
	return &NegotiationHandler{cmds: cmds, q: q}
}

// @Summary Start negotiation
// @Description Opens a haggling session anchored to the quoted total, or resumes the renter's active one
// @Tags negotiations
// @Accept json
// @Produce json
// @Param request body reqdto.StartNegotiationRequest true "Start negotiation request"
// @Success 201 {object} resdto.StartNegotiationResponse
// @Success 200 {object} resdto.StartNegotiationResponse "Active session resumed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/negotiations [post]
func (h *NegotiationHandler) Start(c *gin.Context) {
	var req reqdto.StartNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.Start(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Resumed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/negotiations/"+result.Session.ID.String())
	c.JSON(status, resdto.FromStartNegotiationResult(result))
}

// @Summary Get negotiation
// @Tags negotiations
// @Produce json
// @Param id path string true "Negotiation ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/negotiations/{id} [get]
func (h *NegotiationHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Submit offer
// @Description Records a renter offer and waits for the owner's reply
// @Tags negotiations
// @Accept json
// @Produce json
// @Param id path string true "Negotiation ID"
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 200 {object} resdto.OfferResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/negotiations/{id}/offers [post]
func (h *NegotiationHandler) SubmitOffer(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	amount, err := req.ParseAmount()
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.SubmitOffer(c.Request.Context(), id, amount, req.Message)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferResult(result))
}

// @Summary Accept standing offer
// @Description Renter accepts the owner's current price
// @Tags negotiations
// @Produce json
// @Param id path string true "Negotiation ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/negotiations/{id}/accept [post]
func (h *NegotiationHandler) Accept(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.cmds.AcceptCurrent(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Reject negotiation
// @Description Either party walks away
// @Tags negotiations
// @Accept json
// @Produce json
// @Param id path string true "Negotiation ID"
// @Param request body reqdto.RejectRequest true "Reject request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/negotiations/{id}/reject [post]
func (h *NegotiationHandler) Reject(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	s, err := h.cmds.Reject(c.Request.Context(), id, req.ToRole(), req.Reason)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithInvalidRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}
