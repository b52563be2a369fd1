//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/handler/api"
	reqdto "rental-pricing-engine/internal/handler/dto/request"
	resdto "rental-pricing-engine/internal/handler/dto/response"
	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/queries"
	"rental-pricing-engine/internal/usecase/shared"
	"rental-pricing-engine/tests/common/builder"
	"rental-pricing-engine/tests/common/httptest"
	"rental-pricing-engine/tests/common/testutil"
	queriesmock "rental-pricing-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestEngine(middleware.CustomRecovery(), middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries)

	s.router.GET("/api/insurance-plans", s.handler.InsurancePlans)
	s.router.POST("/api/quotes", s.handler.Quote)
	s.router.POST("/api/selection/click", s.handler.Click)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func quoteRequestBody() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		EquipmentID: "excavator-mini-01",
		DateRange:   reqdto.DateRange{StartDate: "2026-03-02", EndDate: "2026-03-11"},
		PricingOptions: reqdto.PricingOptions{
			PromoCode: " SUMMER20 ",
		},
	}
}

// ================================================================================
// TestInsurancePlans
// ================================================================================

func (s *PricingHandlerTestSuite) TestInsurancePlans() {
	s.mockQueries.EXPECT().InsurancePlans(gomock.Any()).Return(insurance.DefaultCatalog().Plans())

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/insurance-plans", nil)

	var body []resdto.InsurancePlanResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 3)
	s.Equal("basic", body[0].ID)
	s.Equal("0.05", body[0].Rate)
	s.Equal("5000.00", body[0].Coverage)
	s.Equal("0.15", body[2].Rate)
	s.NotEmpty(body[2].Features)
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/api/quotes"
	reqBody := quoteRequestBody()

	s.Run("success: itemised breakdown with two-decimal money", func() {
		priced, err := builder.NewQuoteBuilder().Build()
		s.Require().NoError(err)

		s.mockQueries.EXPECT().Quote(gomock.Any(), queries.QuoteRequest{
			EquipmentID: "excavator-mini-01",
			StartDate:   daterange.NewDate(2026, time.March, 2),
			EndDate:     daterange.NewDate(2026, time.March, 11),
			PromoCode:   "SUMMER20",
		}).Return(priced, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("excavator-mini-01", body.EquipmentID)
		s.Equal("2026-03-02", body.StartDate)
		s.Equal("2026-03-11", body.EndDate)
		s.Equal(resdto.BreakdownResponse{
			DayCount:         10,
			Tier:             "weekly",
			NaiveTotal:       "4500.00",
			BasePrice:        "4150.00",
			DurationDiscount: "350.00",
			PromoCode:        "SUMMER20",
			PromoStatus:      "applied",
			PromoDiscount:    "830.00",
			DiscountedBase:   "3320.00",
			InsuranceAmount:  "0.00",
			DeliveryFee:      "0.00",
			ServiceFee:       "398.40",
			Deposit:          "2000.00",
			Total:            "5718.40",
		}, body.Breakdown)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
		code   string
	}{
		{name: "missing equipmentId", mutate: testutil.Field("equipmentId", nil)},
		{name: "missing startDate", mutate: testutil.Field("startDate", nil)},
		{name: "missing endDate", mutate: testutil.Field("endDate", nil)},
		{name: "malformed startDate", mutate: testutil.Field("startDate", "2026/03/02"), code: "malformed_date"},
		{name: "impossible endDate", mutate: testutil.Field("endDate", "2026-02-30"), code: "malformed_date"},
		{name: "promo code too long", mutate: testutil.Field("promoCode", strings.Repeat("A", 33))},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
			if tc.code != "" {
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, tc.code)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	failures := []struct {
		name       string
		err        error
		expectCode int
		reasonCode string
	}{
		{name: "start date in the past", err: shared.Classify(daterange.ErrDateInPast), expectCode: http.StatusUnprocessableEntity, reasonCode: "date_in_past"},
		{name: "rental too long", err: shared.Classify(daterange.ErrDayCountOutOfRange), expectCode: http.StatusUnprocessableEntity, reasonCode: "day_count_out_of_range"},
		{name: "end before start", err: shared.Classify(daterange.ErrInvalidRange), expectCode: http.StatusBadRequest, reasonCode: "invalid_range"},
		{name: "unknown insurance plan", err: shared.Classify(insurance.ErrUnknownPlan), expectCode: http.StatusBadRequest, reasonCode: "unknown_insurance_plan"},
		{name: "unknown listing", err: shared.Classify(errs.Wrapf(shared.ErrListingNotFound, "listing %s", "nope")), expectCode: http.StatusNotFound, reasonCode: "listing_not_found"},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.reasonCode)
		})
	}

	s.Run("error: 500 hides unclassified failures", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errs.New("schedule store unreachable"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "unreachable")
	})
}

// ================================================================================
// TestClick
// ================================================================================

func (s *PricingHandlerTestSuite) TestClick() {
	url := "/api/selection/click"
	start := daterange.NewDate(2026, time.March, 2)
	end := daterange.NewDate(2026, time.March, 11)

	s.Run("success: first click starts a selection", func() {
		s.mockQueries.EXPECT().Click(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.ClickRequest) (*queries.SelectionView, error) {
				s.Nil(req.Start)
				s.Nil(req.End)
				s.Equal(start, req.Date)
				sel := daterange.Selection{Start: &start}
				return &queries.SelectionView{Selection: sel, State: sel.State()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"equipmentId": "excavator-mini-01",
			"date":        "2026-03-02",
		})

		var body resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("start-only", body.State)
		s.Require().NotNil(body.Start)
		s.Equal("2026-03-02", *body.Start)
		s.Nil(body.End)
		s.Nil(body.Quote)
		s.Nil(body.Rejection)
	})

	s.Run("success: second click completes and prices the selection", func() {
		priced, err := builder.NewQuoteBuilder().Build()
		s.Require().NoError(err)

		s.mockQueries.EXPECT().Click(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.ClickRequest) (*queries.SelectionView, error) {
				s.Require().NotNil(req.Start)
				s.Equal(start, *req.Start)
				s.Equal("SUMMER20", req.PromoCode)
				sel := daterange.Selection{Start: &start, End: &end}
				return &queries.SelectionView{Selection: sel, State: sel.State(), Quote: priced}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"equipmentId": "excavator-mini-01",
			"start":       "2026-03-02",
			"date":        "2026-03-11",
			"promoCode":   "SUMMER20",
		})

		var body resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("complete", body.State)
		s.Require().NotNil(body.Quote)
		s.Equal("5718.40", body.Quote.Breakdown.Total)
	})

	s.Run("success: unpriceable selection reports a rejection", func() {
		s.mockQueries.EXPECT().Click(gomock.Any(), gomock.Any()).
			Return(&queries.SelectionView{
				Selection: daterange.Selection{Start: &start, End: &end},
				State:     "complete",
				Rejection: shared.Classify(daterange.ErrRangeUnavailable),
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"equipmentId": "excavator-mini-01",
			"start":       "2026-03-02",
			"date":        "2026-03-11",
		})

		var body resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Rejection)
		s.Equal("range_unavailable", body.Rejection.Code)
		s.Equal(daterange.ErrRangeUnavailable.Error(), body.Rejection.Message)
	})

	s.Run("error: 400 on malformed current selection", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"equipmentId": "excavator-mini-01",
			"start":       "March 2",
			"date":        "2026-03-11",
		})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "malformed_date")
	})

	s.Run("error: 404 for unknown equipment", func() {
		s.mockQueries.EXPECT().Click(gomock.Any(), gomock.Any()).Return(nil, shared.Classify(shared.ErrListingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"equipmentId": "crane-404",
			"date":        "2026-03-02",
		})
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "listing_not_found")
	})
}
