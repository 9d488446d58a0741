package response

import (
	"time"

	"furnistore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderLineResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	BuyerEmail    string              `json:"buyer_email"`
	Address       string              `json:"address"`
	PaymentMethod string              `json:"payment_method"`
	Lines         []OrderLineResponse `json:"lines"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}
