//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/schedule"
	"rental-pricing-engine/internal/handler/api"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/queries"
	"rental-pricing-engine/internal/usecase/shared"
	"rental-pricing-engine/tests/common/builder"
	"rental-pricing-engine/tests/common/httptest"
	queriesmock "rental-pricing-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestEngine(middleware.CustomRecovery(), middleware.ErrorHandler())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.router.GET("/api/equipment/:id/calendar", api.NewCalendarHandler(s.mockQueries).Month)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestMonth() {
	s.Run("success: days and priced windows", func() {
		priced, err := builder.NewQuoteBuilder().With(func(q *builder.QuoteBuilder) {
			q.PromoCode = ""
			q.Start = daterange.NewDate(2026, time.March, 24)
			q.End = daterange.NewDate(2026, time.March, 30)
		}).Build()
		s.Require().NoError(err)

		view := &queries.CalendarView{
			Listing: builder.NewListingBuilder().Build(),
			Year:    2026,
			Month:   time.March,
			Days: []queries.CalendarDay{
				{TimeSlot: schedule.TimeSlot{
					Date:            daterange.NewDate(2026, time.March, 24),
					Available:       true,
					DemandLevel:     schedule.DemandLow,
					DiscountPercent: 30,
					Price:           money.MustParse("315"),
					Recommended:     true,
					Reason:          schedule.ReasonEndOfMonth,
				}},
				{TimeSlot: schedule.TimeSlot{
					Date:        daterange.NewDate(2026, time.March, 25),
					DemandLevel: schedule.DemandHigh,
					Price:       money.MustParse("450"),
				}, Booked: true},
			},
			Windows: []queries.PricedWindow{{
				Window: schedule.Window{
					Label:         "End-of-month week",
					Start:         priced.Range.Start,
					End:           priced.Range.End,
					DayCount:      priced.Range.DayCount(),
					Reason:        schedule.ReasonEndOfMonth,
					Source:        "heuristic",
					ExpectedTotal: money.MustParse("2450.5"),
				},
				Breakdown: priced.Breakdown,
			}},
		}
		s.mockQueries.EXPECT().Month(gomock.Any(), "excavator-mini-01", 2026, time.March).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/equipment/excavator-mini-01/calendar?month=2026-03", nil)

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03", body.Month)
		s.Equal("excavator-mini-01", body.EquipmentID)
		s.Require().Len(body.Days, 2)
		s.Equal("2026-03-24", body.Days[0].Date)
		s.Equal("low", body.Days[0].DemandLevel)
		s.Equal("315.00", body.Days[0].Price)
		s.True(body.Days[0].Recommended)
		s.True(body.Days[1].Booked)
		s.False(body.Days[1].Available)
		s.Require().Len(body.Windows, 1)
		s.Equal("2026-03-24", body.Windows[0].StartDate)
		s.Equal("2450.50", body.Windows[0].ExpectedTotal)
		s.Equal(7, body.Windows[0].Breakdown.DayCount)
		s.Equal("weekly", body.Windows[0].Breakdown.Tier)
	})

	for _, month := range []string{"", "2026-3", "March", "2026-13"} {
		s.Run("error: 400 for month "+month, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/equipment/excavator-mini-01/calendar?month="+month, nil)
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "malformed_date")
		})
	}

	s.Run("error: 404 for unknown equipment", func() {
		s.mockQueries.EXPECT().Month(gomock.Any(), "crane-404", 2026, time.April).
			Return(nil, shared.Classify(shared.ErrListingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/equipment/crane-404/calendar?month=2026-04", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "listing_not_found")
	})
}
