package commands

import "furnistore/internal/pkg/errs"

var (
	ErrUserAlreadyExists  = errs.New("user already exists")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")

	ErrNoUpdatedFields = errs.New("no fields provided for update")

	ErrItemNotFound      = errs.New("item not found")
	ErrInvalidQuantity   = errs.New("invalid quantity")
	ErrInvalidDiscount   = errs.New("invalid discount")
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrDomainValidation  = errs.New("domain validation error")

	ErrEmptyCart         = errs.New("cart is empty")
	ErrZeroTotal         = errs.New("order total is zero")
	ErrPaymentFailed     = errs.New("payment failed")
	ErrOrderNotFound     = errs.New("order not found")
	ErrInvalidTransition = errs.New("invalid order status transition")
)
