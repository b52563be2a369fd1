package bootstrap

import (
	"context"

	"rental-pricing-engine/internal/infra/jobs"
	"rental-pricing-engine/internal/pkg/config"
	"rental-pricing-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewNegotiationSweeper,
	),
	fx.Invoke(func(*jobs.NegotiationSweeper) {}),
)

func NewNegotiationSweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.NegotiationCommands) (*jobs.NegotiationSweeper, error) {
	sweeper, err := jobs.NewNegotiationSweeper(cfg.Negotiation.SweepSchedule, cmds)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})

	return sweeper, nil
}
