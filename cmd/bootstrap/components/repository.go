package components

import (
	"log/slog"

	"furnistore/internal/domain/cart"
	"furnistore/internal/infra/memory"
	"furnistore/internal/infra/payment"
	"furnistore/internal/infra/postgres"
	"furnistore/internal/usecase/commands"
	"furnistore/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// In-memory registries (authoritative runtime state)
		fx.Annotate(
			memory.NewUserRegistry,
			fx.As(new(commands.UserRegistry)),
			fx.As(new(queries.UserFinder)),
			fx.As(new(queries.UserSource)),
		),
		fx.Annotate(
			memory.NewCartRegistry,
			fx.As(new(commands.CartRegistry)),
			fx.As(new(queries.CartProvider)),
		),
		fx.Annotate(
			memory.NewOrderRegistry,
			fx.As(new(commands.OrderRegistry)),
			fx.As(new(queries.OrderSource)),
		),
		// Postgres archives (best-effort durability)
		fx.Annotate(
			postgres.NewUserArchive,
			fx.As(new(commands.UserArchive)),
		),
		fx.Annotate(
			postgres.NewOrderArchive,
			fx.As(new(commands.OrderArchive)),
		),
		fx.Annotate(
			postgres.NewCartArchive,
			fx.As(new(commands.CartArchive)),
		),
		fx.Annotate(
			postgres.NewCatalogStore,
			fx.As(new(commands.CatalogStore)),
		),
		// Payment
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(cart.PaymentGateway)),
		),
	),
)

func NewPaymentGateway() *payment.StubGateway {
	return payment.NewStubGateway(slog.Default())
}
