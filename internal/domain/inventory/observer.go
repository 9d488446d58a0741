package inventory

import (
	"log/slog"

	"furnistore/internal/domain/catalog"
)

type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeUpdated ChangeType = "updated"
	ChangeRemoved ChangeType = "removed"
)

// Observer receives every stock mutation, synchronously and in registration
// order. Observers must not call back into the inventory.
type Observer interface {
	Notify(item *catalog.Item, change ChangeType)
}

const DefaultLowStockThreshold = 5

// LowStockNotifier flags items whose stock falls at or below a threshold
// after an add or update.
type LowStockNotifier struct {
	threshold int
	logger    *slog.Logger
}

func NewLowStockNotifier(threshold int, logger *slog.Logger) *LowStockNotifier {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LowStockNotifier{threshold: threshold, logger: logger}
}

func (n *LowStockNotifier) Notify(item *catalog.Item, change ChangeType) {
	if change != ChangeAdded && change != ChangeUpdated {
		return
	}
	if item.AvailableQuantity() <= n.threshold {
		n.logger.Warn("low stock",
			"item", item.Name(),
			"kind", item.Kind().String(),
			"remaining", item.AvailableQuantity(),
			"threshold", n.threshold,
		)
	}
}
