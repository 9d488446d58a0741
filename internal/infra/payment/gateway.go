package payment

import (
	"context"
	"log/slog"

	"furnistore/internal/domain/user"
)

// StubGateway approves every charge. It stands in for a real payment
// provider; swap the binding in bootstrap to integrate one.
type StubGateway struct {
	logger *slog.Logger
}

func NewStubGateway(logger *slog.Logger) *StubGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubGateway{logger: logger}
}

func (g *StubGateway) ProcessPayment(_ context.Context, buyer *user.User, amount float64) bool {
	g.logger.Info("payment processed",
		"buyer", buyer.Email().Value(),
		"method", buyer.PaymentMethod(),
		"amount", amount,
	)
	return true
}
