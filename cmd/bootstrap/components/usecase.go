package components

import (
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/domain/schedule"
	"rental-pricing-engine/internal/pkg/clock"
	"rental-pricing-engine/internal/pkg/config"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/pkg/idgen"
	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/commands"
	"rental-pricing-engine/internal/usecase/queries"
	"rental-pricing-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseScheduleModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewUUIDGenerator,
	NewAssembler,
	shared.NewPricer,
)

var usecaseScheduleModule = fx.Module("usecase/schedule",
	fx.Provide(
		func() schedule.DemandModel {
			return schedule.HeuristicDemand{}
		},
		schedule.NewScheduler,
		fx.Annotate(
			schedule.NewHeuristicPolicy,
			fx.As(new(schedule.Recommender)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewNegotiationCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewCalendarQueries,
		queries.NewNegotiationQueries,
		queries.NewBookingQueries,
	),
)

func NewAssembler(cfg config.Config, promos *promo.Catalog, plans *insurance.Catalog) (*pricing.Assembler, error) {
	fee, err := money.Parse(cfg.Pricing.DeliveryFee)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid PRICING_DELIVERY_FEE %q", cfg.Pricing.DeliveryFee)
	}
	return pricing.NewAssembler(promos, plans, fee)
}

func NewNegotiationCommands(
	cfg config.Config,
	pricer *shared.Pricer,
	store shared.SessionStore,
	metrics shared.MetricsRecorder,
	ids idgen.Generator,
	clk clock.Clock,
) commands.NegotiationCommands {
	nc := cfg.Negotiation
	return commands.NewNegotiationCommands(
		pricer,
		store,
		negotiation.Policy{MaxRounds: nc.MaxRounds},
		negotiation.RandomDelay{Min: nc.ResponseDelayMin, Max: nc.ResponseDelayMax},
		nc.IdleTTL,
		metrics,
		ids,
		clk,
	)
}
