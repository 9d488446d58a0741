package cart

import (
	"log/slog"

	"furnistore/internal/domain/catalog"
)

type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
)

// Observer receives cart mutations synchronously, in registration order.
type Observer interface {
	Notify(c *Cart, change ChangeType, item *catalog.Item)
}

// LoggingNotifier reports cart mutations to the log.
type LoggingNotifier struct {
	logger *slog.Logger
}

func NewLoggingNotifier(logger *slog.Logger) *LoggingNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingNotifier{logger: logger}
}

func (n *LoggingNotifier) Notify(c *Cart, change ChangeType, item *catalog.Item) {
	n.logger.Info("cart changed",
		"buyer", c.Buyer().Email().Value(),
		"change", string(change),
		"item", item.Name(),
	)
}
