package queries

import (
	"context"
	"sort"

	"furnistore/internal/domain/user"
	"furnistore/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Address       string    `json:"address"`
	PaymentMethod string    `json:"paymentMethod"`
}

type UserFinder interface {
	FindByID(id uuid.UUID) (*user.User, error)
}

// UserSource adds the enumeration the admin listing needs.
type UserSource interface {
	UserFinder
	All() []*user.User
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) []*UserView
}

type userQueriesImpl struct {
	users UserSource
}

func NewUserQueries(users UserSource) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(_ context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.users.FindByID(id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	return NewUserView(u), nil
}

func (q *userQueriesImpl) List(_ context.Context) []*UserView {
	users := q.users.All()
	sort.Slice(users, func(i, j int) bool {
		return users[i].Email().Value() < users[j].Email().Value()
	})
	views := make([]*UserView, len(users))
	for i, u := range users {
		views[i] = NewUserView(u)
	}
	return views
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:            u.ID(),
		Name:          u.Name(),
		Email:         u.Email().Value(),
		Role:          u.Role().String(),
		Address:       u.Address(),
		PaymentMethod: u.PaymentMethod(),
	}
}
