//go:build unit || e2e

package builder

import (
	"furnistore/internal/domain/user"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/pkg/password"
)

type UserBuilder struct {
	Name          string
	Email         string
	Password      string
	Role          string
	Address       string
	PaymentMethod string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:          "Test Buyer",
		Email:         "buyer@example.com",
		Password:      "password123",
		Role:          "client",
		Address:       "1 Test Street",
		PaymentMethod: "Credit Card",
	}
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(b.Password)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Name, email, hash, role, b.Address, b.PaymentMethod)
}

func (b *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:          b.Name,
		Email:         b.Email,
		Password:      b.Password,
		Address:       b.Address,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(pw string) *UserBuilder {
	b.Password = pw
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = "admin"
	b.Email = "admin@example.com"
	return b
}
