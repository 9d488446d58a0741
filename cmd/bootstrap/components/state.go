package components

import (
	"context"
	"log/slog"

	"furnistore/internal/domain/cart"
	"furnistore/internal/domain/inventory"
	"furnistore/internal/pkg/config"
	"furnistore/internal/usecase/commands"

	"go.uber.org/fx"
)

// StateModule owns the process-wide runtime state: the inventory with its
// observers, the in-memory registries, and the archive sync that restores
// them at startup and flushes them at shutdown.
var StateModule = fx.Module("state",
	fx.Provide(
		NewInventory,
		NewCartObservers,
		commands.NewStateSync,
	),
	fx.Invoke(registerStateSync),
)

func NewInventory(cfg config.Config) *inventory.Inventory {
	inv := inventory.New()
	inv.RegisterObserver(inventory.NewLowStockNotifier(cfg.Pricing.LowStockThreshold, slog.Default()))
	return inv
}

func NewCartObservers() []cart.Observer {
	return []cart.Observer{cart.NewLoggingNotifier(slog.Default())}
}

func registerStateSync(lc fx.Lifecycle, sync *commands.StateSync) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sync.Load(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return sync.Flush(ctx)
		},
	})
}
