package components

import (
	"rental-pricing-engine/internal/infra/uow"

	"go.uber.org/fx"
)

// Booking writes go through the unit of work, which builds its repositories
// per transaction.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
