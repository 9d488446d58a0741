package request

type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Address       *string `json:"address,omitempty" binding:"omitempty,min=1"`
	PaymentMethod *string `json:"payment_method,omitempty" binding:"omitempty,min=1"`
}

type AdminUpdateUserRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Address       *string `json:"address,omitempty" binding:"omitempty,min=1"`
	PaymentMethod *string `json:"payment_method,omitempty" binding:"omitempty,min=1"`
	Role          *string `json:"role,omitempty" binding:"omitempty,oneof=admin client"`
}

type AdminDeleteUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}
