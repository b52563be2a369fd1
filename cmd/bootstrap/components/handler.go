package components

import (
	"rental-pricing-engine/internal/handler"
	"rental-pricing-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewCalendarHandler,
		api.NewNegotiationHandler,
		api.NewBookingHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
