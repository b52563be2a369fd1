package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-pricing-engine/internal/handler/api"
	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/pkg/config"
)

const offerTimeoutSlack = 5 * time.Second

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Pricing     *api.PricingHandler
	Calendar    *api.CalendarHandler
	Negotiation *api.NegotiationHandler
	Booking     *api.BookingHandler
}

func NewHandlers(
	pricing *api.PricingHandler,
	calendar *api.CalendarHandler,
	negotiation *api.NegotiationHandler,
	booking *api.BookingHandler,
) Handlers {
	return Handlers{Pricing: pricing, Calendar: calendar, Negotiation: negotiation, Booking: booking}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics middleware.MetricsExporter, h Handlers) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, cfg, metrics, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics middleware.HTTPObserver) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics(metrics))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, metrics middleware.MetricsExporter, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/insurance-plans", Handler: h.Pricing.InsurancePlans},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Pricing.Quote},
			{Method: http.MethodPost, Path: "/selection/click", Handler: h.Pricing.Click},
			{Method: http.MethodGet, Path: "/equipment/:id/calendar", Handler: h.Calendar.Month},
		})

		// Offers wait for the owner reply, so they get the longest delay plus slack.
		offerTimeout := middleware.RequestTimeout(cfg.Negotiation.ResponseDelayMax + offerTimeoutSlack)

		negotiations := apiGroup.Group("/negotiations")
		{
			addRoutes(negotiations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Negotiation.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Negotiation.Get},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: h.Negotiation.SubmitOffer, Mw: []gin.HandlerFunc{offerTimeout}},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Negotiation.Accept},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Negotiation.Reject},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers each route with its own middleware ahead of the handler
// in gin's chain, so middleware calling c.Next wraps the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
