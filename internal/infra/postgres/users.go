package postgres

import (
	"context"
	"log/slog"
	"time"

	"furnistore/internal/domain/user"
	"furnistore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserArchive struct {
	pool *pgxpool.Pool
}

func NewUserArchive(pool *pgxpool.Pool) *UserArchive {
	return &UserArchive{pool: pool}
}

func (a *UserArchive) Save(ctx context.Context, u *user.User) error {
	_, err := a.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, address, payment_method, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			address = EXCLUDED.address,
			payment_method = EXCLUDED.payment_method,
			last_login = EXCLUDED.last_login`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		u.Address(), u.PaymentMethod(), u.CreatedAt(), u.LastLogin())
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to save user", err)
	}
	return nil
}

func (a *UserArchive) Delete(ctx context.Context, email string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to delete user", err)
	}
	return nil
}

func (a *UserArchive) LoadAll(ctx context.Context) ([]*user.User, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, name, email, password_hash, role, address, payment_method, created_at, last_login
		FROM users
		ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var (
			id                                                    uuid.UUID
			name, emailStr, hash, roleStr, address, paymentMethod string
			createdAt                                             time.Time
			lastLogin                                             *time.Time
		)
		if err := rows.Scan(&id, &name, &emailStr, &hash, &roleStr, &address, &paymentMethod, &createdAt, &lastLogin); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan user row", err)
		}

		email, err := user.NewEmail(emailStr)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid archived email", err)
		}
		role, err := user.NewRole(roleStr)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid archived role", err)
		}

		users = append(users, user.Reconstruct(id, name, email, hash, role, address, paymentMethod, createdAt, lastLogin))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read user rows", err)
	}
	return users, nil
}
