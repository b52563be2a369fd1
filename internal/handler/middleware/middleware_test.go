//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"rental-pricing-engine/internal/handler/httperr"
	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/pkg/config"
	"rental-pricing-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu  sync.Mutex
	got []observation
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, observation{method: method, route: route, status: status})
}

func TestErrorHandler(t *testing.T) {
	router := httptest.NewTestEngine(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/rejected", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errors.New("booked"), "range is already booked", "range_unavailable")
	})
	router.GET("/broken", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("pg: connection reset"), "pg: connection reset", "db")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("dropped"))
	})

	t.Run("public error keeps its reason code", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/rejected", nil)
		httptest.AssertErrorCode(t, rec, http.StatusUnprocessableEntity, "range_unavailable")
	})

	t.Run("server errors hide the cause", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/broken", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
		assert.NotContains(t, rec.Body.String(), "detail")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("unwritten private error becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestMetrics(t *testing.T) {
	obs := &fakeObserver{}
	router := httptest.NewTestEngine(middleware.Metrics(obs))
	router.GET("/api/bookings/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings/3f0c", nil)
	httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil)

	require.Len(t, obs.got, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/bookings/:id", status: http.StatusOK}, obs.got[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, obs.got[1])
}

func TestRequestTimeout(t *testing.T) {
	router := httptest.NewTestEngine(middleware.RequestTimeout(50 * time.Millisecond))
	router.GET("/wait", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"remaining": time.Until(deadline).Milliseconds()})
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/wait", nil)
	var body struct {
		Remaining int64 `json:"remaining"`
	}
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.LessOrEqual(t, body.Remaining, int64(50))
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})
	router := httptest.NewTestEngine(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("incoming id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "renter-trace-1"})
		assert.Equal(t, "renter-trace-1", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "renter-trace-1", rec.Body.String())
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil)
		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, id)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestCORS_ExposesTraceHeaders(t *testing.T) {
	router := httptest.NewTestEngine(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type"},
	}))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
		map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-request-id")
	assert.Contains(t, exposed, "location")
}
