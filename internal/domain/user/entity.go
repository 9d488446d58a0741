package user

import (
	"errors"
	"sync"
	"time"

	"furnistore/internal/domain/order"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("name cannot be empty")
)

// User is a registered buyer. The order history is the only mutable part
// shared across requests, so it carries its own lock; everything else is
// written once at registration or through UpdateProfile.
type User struct {
	id            uuid.UUID
	name          string
	email         Email
	passwordHash  string
	role          Role
	address       string
	paymentMethod string
	createdAt     time.Time
	lastLogin     *time.Time

	historyMu    sync.Mutex
	orderHistory []*order.Order
}

func NewUser(name string, email Email, passwordHash string, role Role, address, paymentMethod string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	return &User{
		id:            uuid.New(),
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		address:       address,
		paymentMethod: paymentMethod,
		createdAt:     time.Now(),
	}, nil
}

// Reconstruct rebuilds a user from a persisted record.
func Reconstruct(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	address, paymentMethod string,
	createdAt time.Time,
	lastLogin *time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		address:       address,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
		lastLogin:     lastLogin,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Address() string       { return u.address }
func (u *User) PaymentMethod() string { return u.paymentMethod }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) LastLogin() *time.Time { return u.lastLogin }

func (u *User) TouchLogin(t time.Time) {
	u.lastLogin = &t
}

// UpdateProfile replaces only the supplied fields.
func (u *User) UpdateProfile(name, address, paymentMethod *string) {
	if name != nil && *name != "" {
		u.name = *name
	}
	if address != nil {
		u.address = *address
	}
	if paymentMethod != nil && *paymentMethod != "" {
		u.paymentMethod = *paymentMethod
	}
}

func (u *User) SetRole(r Role) error {
	if !r.IsValid() {
		return ErrInvalidRole
	}
	u.role = r
	return nil
}

// AddOrder appends a completed order to the buyer's history.
func (u *User) AddOrder(o *order.Order) {
	u.historyMu.Lock()
	defer u.historyMu.Unlock()
	u.orderHistory = append(u.orderHistory, o)
}

// Orders returns a snapshot of the history in placement order.
func (u *User) Orders() []*order.Order {
	u.historyMu.Lock()
	defer u.historyMu.Unlock()
	history := make([]*order.Order, len(u.orderHistory))
	copy(history, u.orderHistory)
	return history
}
