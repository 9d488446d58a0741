package response

import (
	"furnistore/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CartEntryResponse struct {
	Name                string  `json:"name"`
	Kind                string  `json:"kind"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	DiscountedUnitPrice float64 `json:"discounted_unit_price"`
}

type CartResponse struct {
	BuyerEmail string              `json:"buyer_email"`
	Discount   string              `json:"discount"`
	Entries    []CartEntryResponse `json:"entries"`
	Total      float64             `json:"total"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	var resp CartResponse
	_ = copier.Copy(&resp, v)
	if resp.Entries == nil {
		resp.Entries = []CartEntryResponse{}
	}
	return &resp
}
