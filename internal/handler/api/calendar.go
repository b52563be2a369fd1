package api

import (
	"net/http"

	reqdto "rental-pricing-engine/internal/handler/dto/request"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Equipment calendar
// @Description Daily demand slots and priced rental windows for one month
// @Tags calendar
// @Produce json
// @Param id path string true "Equipment ID"
// @Param month query string true "Month as YYYY-MM"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id}/calendar [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, month, err := reqdto.ParseMonth(c.Query("month"))
	if err != nil {
		abortWithInvalidRequest(c, err)
		return
	}

	view, err := h.q.Month(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}
