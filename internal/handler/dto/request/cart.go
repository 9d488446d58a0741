package request

type CartItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type SetCartDiscountRequest struct {
	Discount string `json:"discount" binding:"required"`
}
