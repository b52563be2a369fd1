package components

import (
	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/infra/db"
	"rental-pricing-engine/internal/infra/memory"
	"rental-pricing-engine/internal/infra/readstore"
	"rental-pricing-engine/internal/pkg/config"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	catalogModule,
	readstoreModule,
	memoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		NewPromoCatalog,
		insurance.DefaultCatalog,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReadStore)),
			fx.As(new(shared.AvailabilityReadStore)),
		),
	),
)

// Listings and negotiation sessions live in process memory.
var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			NewListingStore,
			fx.As(new(shared.ListingReadStore)),
		),
		fx.Annotate(
			memory.NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPromoCatalog(cfg config.Config) (*promo.Catalog, error) {
	return promo.LoadCatalog(cfg.Pricing.PromoCatalogPath)
}

func NewListingStore(cfg config.Config) (*memory.ListingStore, error) {
	return memory.LoadListings(cfg.Pricing.ListingCatalogPath)
}
