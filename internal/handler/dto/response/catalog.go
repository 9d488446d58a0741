package response

import (
	"furnistore/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Kind              string  `json:"kind"`
	Description       string  `json:"description"`
	Material          string  `json:"material"`
	Color             string  `json:"color"`
	WarrantyYears     int     `json:"warranty_years"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	Discount          string  `json:"discount"`
	TypeBonus         float64 `json:"type_bonus"`
	InStock           bool    `json:"in_stock"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromItemList(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}
