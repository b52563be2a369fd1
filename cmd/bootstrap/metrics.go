package bootstrap

import (
	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/infra/metrics"
	"rental-pricing-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(shared.MetricsRecorder)),
			fx.As(new(middleware.MetricsExporter)),
		),
	),
)
