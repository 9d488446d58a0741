package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNoLines           = errors.New("order must contain at least one line")
)

// Line is one itemized position of an order: what was bought, how many, and
// at which (already discounted) unit price.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// Order is the immutable priced snapshot a successful checkout produces.
// Only the status ever changes, and only along Pending → Completed →
// Delivered.
type Order struct {
	id            uuid.UUID
	buyerEmail    string
	address       string
	paymentMethod string
	lines         []Line
	total         float64
	status        Status
	createdAt     time.Time
}

func New(buyerEmail, address, paymentMethod string, lines []Line, total float64) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)

	return &Order{
		id:            uuid.New(),
		buyerEmail:    buyerEmail,
		address:       address,
		paymentMethod: paymentMethod,
		lines:         copied,
		total:         total,
		status:        StatusPending,
		createdAt:     time.Now(),
	}, nil
}

// Reconstruct rebuilds an order from a persisted record, bypassing the
// checkout-only construction path.
func Reconstruct(
	id uuid.UUID,
	buyerEmail, address, paymentMethod string,
	lines []Line,
	total float64,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		buyerEmail:    buyerEmail,
		address:       address,
		paymentMethod: paymentMethod,
		lines:         lines,
		total:         total,
		status:        status,
		createdAt:     createdAt,
	}
}

// Complete transitions Pending → Completed. A checkout calls this before the
// order becomes visible, so callers never observe a Pending order.
func (o *Order) Complete() error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusCompleted
	return nil
}

// MarkDelivered transitions Completed → Delivered. From any other state the
// status is left untouched and the error reported.
func (o *Order) MarkDelivered() error {
	if o.status != StatusCompleted {
		return ErrInvalidTransition
	}
	o.status = StatusDelivered
	return nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) BuyerEmail() string    { return o.buyerEmail }
func (o *Order) Address() string       { return o.address }
func (o *Order) PaymentMethod() string { return o.paymentMethod }
func (o *Order) Total() float64        { return o.total }
func (o *Order) Status() Status        { return o.status }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }

// Lines returns a defensive copy; the snapshot itself never changes.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}
