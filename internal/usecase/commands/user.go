package commands

import (
	"context"
	"log/slog"

	"furnistore/internal/domain/user"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/pkg/errs"
	"furnistore/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error)
	Update(ctx context.Context, req reqdto.AdminUpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, email string) error
}

type userCommandsImpl struct {
	users   UserRegistry
	archive UserArchive
}

func NewUserCommands(users UserRegistry, archive UserArchive) UserCommands {
	return &userCommandsImpl{
		users:   users,
		archive: archive,
	}
}

// UpdateProfile lets the authenticated user change their own contact fields.
func (u *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error) {
	target, err := u.users.FindByID(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	if req.Name == nil && req.Address == nil && req.PaymentMethod == nil {
		return nil, ErrNoUpdatedFields
	}

	target.UpdateProfile(req.Name, req.Address, req.PaymentMethod)
	u.archiveUser(ctx, target)

	return queries.NewUserView(target), nil
}

// Update is the admin variant: any user by email, role changes included.
func (u *userCommandsImpl) Update(ctx context.Context, req reqdto.AdminUpdateUserRequest) (*queries.UserView, error) {
	target, err := u.users.FindByEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	if req.Name == nil && req.Address == nil && req.PaymentMethod == nil && req.Role == nil {
		return nil, ErrNoUpdatedFields
	}

	target.UpdateProfile(req.Name, req.Address, req.PaymentMethod)
	if req.Role != nil {
		role, err := user.NewRole(*req.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		if err := target.SetRole(role); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}
	u.archiveUser(ctx, target)

	return queries.NewUserView(target), nil
}

func (u *userCommandsImpl) Delete(ctx context.Context, email string) error {
	if err := u.users.Remove(email); err != nil {
		return errs.Mark(err, ErrUserNotFound)
	}

	if err := u.archive.Delete(ctx, email); err != nil {
		slog.Warn("failed to delete archived user", "email", email, "error", err.Error())
	}
	return nil
}

func (u *userCommandsImpl) archiveUser(ctx context.Context, target *user.User) {
	if err := u.archive.Save(ctx, target); err != nil {
		slog.Warn("failed to archive user", "email", target.Email().Value(), "error", err.Error())
	}
}
