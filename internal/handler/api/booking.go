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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Finalises a price into a booking record, optionally at a negotiated total
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingDetails(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}
	b, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetails(b))
}
