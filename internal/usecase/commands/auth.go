package commands

import (
	"context"
	"log/slog"

	"furnistore/internal/domain/user"
	reqdto "furnistore/internal/handler/dto/request"
	"furnistore/internal/pkg/clock"
	"furnistore/internal/pkg/errs"
	"furnistore/internal/pkg/jwt"
	"furnistore/internal/pkg/password"
	"furnistore/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      UserRegistry
	archive    UserArchive
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(users UserRegistry, archive UserArchive, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		archive:    archive,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := a.users.FindByEmail(email.Value()); err == nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	u, err := user.NewUser(req.Name, email, hash, user.RoleClient, req.Address, req.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.users.Add(u); err != nil {
		return nil, errs.Mark(err, ErrUserAlreadyExists)
	}

	if err := a.archive.Save(ctx, u); err != nil {
		slog.Warn("failed to archive user", "email", email.Value(), "error", err.Error())
	}

	return queries.NewUserView(u), nil
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	u, err := a.users.FindByEmail(req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(u.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	u.TouchLogin(a.clock.Now())

	return &LoginResult{UserID: u.ID(), Token: token}, nil
}
