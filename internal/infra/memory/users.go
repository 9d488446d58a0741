package memory

import (
	"log/slog"
	"sync"

	"furnistore/internal/domain/user"
	"furnistore/internal/infra"

	"github.com/google/uuid"
)

// UserRegistry is the authoritative in-process user store, keyed by
// lowercased email with a secondary ID index.
type UserRegistry struct {
	mu      sync.RWMutex
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (r *UserRegistry) Add(u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := u.Email().Value()
	if _, exists := r.byEmail[email]; exists {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "user already registered", nil)
	}

	r.byEmail[email] = u
	r.byID[u.ID()] = u
	return nil
}

func (r *UserRegistry) FindByEmail(email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (r *UserRegistry) FindByID(id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (r *UserRegistry) Remove(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", nil)
	}
	delete(r.byEmail, email)
	delete(r.byID, u.ID())
	return nil
}

func (r *UserRegistry) All() []*user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*user.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, u)
	}
	return users
}
