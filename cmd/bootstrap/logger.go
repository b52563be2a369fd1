package bootstrap

import (
	"log/slog"

	"rental-pricing-engine/internal/handler/middleware"
	"rental-pricing-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger also installs the logger as the process default so that
// packages logging through slog directly share its handler.
func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	l := logger.GetSlogLogger()
	slog.SetDefault(l)
	return l
}
