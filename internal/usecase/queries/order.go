package queries

import (
	"context"
	"time"

	"furnistore/internal/domain/order"
	"furnistore/internal/domain/user"
	"furnistore/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderLineView struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	BuyerEmail    string          `json:"buyerEmail"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	Lines         []OrderLineView `json:"lines"`
	Total         float64         `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderSource interface {
	FindByID(id uuid.UUID) (*order.Order, error)
	ListByBuyer(email string) []*order.Order
	All() []*order.Order
}

type OrderQueries interface {
	History(ctx context.Context, buyerEmail string) []*OrderView
	Get(ctx context.Context, id uuid.UUID, requester *user.User) (*OrderView, error)
	All(ctx context.Context) []*OrderView
}

type orderQueriesImpl struct {
	orders OrderSource
}

func NewOrderQueries(orders OrderSource) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) History(_ context.Context, buyerEmail string) []*OrderView {
	return toOrderViews(q.orders.ListByBuyer(buyerEmail))
}

// Get returns the order only to its buyer or to an admin.
func (q *orderQueriesImpl) Get(_ context.Context, id uuid.UUID, requester *user.User) (*OrderView, error) {
	o, err := q.orders.FindByID(id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOrderNotFound)
	}
	if requester.Role() != user.RoleAdmin && o.BuyerEmail() != requester.Email().Value() {
		return nil, errs.Mark(errs.New("order belongs to another buyer"), errs.ErrOrderNotFound)
	}
	return NewOrderView(o), nil
}

func (q *orderQueriesImpl) All(_ context.Context) []*OrderView {
	return toOrderViews(q.orders.All())
}

func toOrderViews(orders []*order.Order) []*OrderView {
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views
}

func NewOrderView(o *order.Order) *OrderView {
	lines := o.Lines()
	lineViews := make([]OrderLineView, len(lines))
	for i, l := range lines {
		lineViews[i] = OrderLineView{Name: l.Name, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return &OrderView{
		ID:            o.ID(),
		BuyerEmail:    o.BuyerEmail(),
		Address:       o.Address(),
		PaymentMethod: o.PaymentMethod(),
		Lines:         lineViews,
		Total:         o.Total(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
	}
}
