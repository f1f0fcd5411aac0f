// Package memory keeps credentials in process memory. Records are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"secondchance/internal/domain/entity"
	"secondchance/internal/domain/repository"
	"secondchance/internal/errors"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository with a unique email index.
type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
	now     func() time.Time
}

// NewUserRepository returns an empty in-memory credential store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
		now:     time.Now,
	}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// Create checks and claims the email under one write lock, so of two concurrent
// inserts for the same email exactly one succeeds.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if user == nil || user.Email == "" || user.PasswordHash == "" {
		return errors.New("missing required user information")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byEmail[user.Email]; taken {
		return errors.WithStack(repository.ErrDuplicateEmail)
	}

	stored := cloneUser(user)
	stored.ID = uuid.New()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = repo.now().UTC()
	}

	repo.byEmail[stored.Email] = stored
	repo.byID[stored.ID] = stored

	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	copied := *user

	return &copied
}
