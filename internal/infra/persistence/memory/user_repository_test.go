package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"secondchance/internal/domain/entity"
	"secondchance/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string) *entity.User {
	return &entity.User{
		Email:        email,
		FirstName:    "Alice",
		LastName:     "Liddell",
		PasswordHash: "$2a$10$hash",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newUser("a@x.io")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("a@x.io")))
	require.NoError(t, repo.Create(ctx, newUser("A@x.io")))

	_, err := repo.FindByEmail(ctx, "A@X.IO")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := newUser("a@x.io")
	require.NoError(t, repo.Create(ctx, first))

	second := newUser("a@x.io")
	second.FirstName = "Mallory"
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Equal(t, uuid.Nil, second.ID)

	stored, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newUser("a@x.io")
	require.NoError(t, repo.Create(ctx, user))
	user.FirstName = "changed"

	found, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	found.PasswordHash = "tampered"

	again, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.FirstName)
	assert.Equal(t, "$2a$10$hash", again.PasswordHash)
}

func TestUserRepository_RejectsIncompleteAndCanceled(t *testing.T) {
	repo := NewUserRepository()

	require.Error(t, repo.Create(context.Background(), &entity.User{Email: "a@x.io"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, repo.Create(ctx, newUser("b@x.io")), context.Canceled)
	_, err := repo.FindByEmail(ctx, "b@x.io")
	require.ErrorIs(t, err, context.Canceled)
}

func TestUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		dupes     atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			user := newUser("race@x.io")
			user.FirstName = fmt.Sprintf("worker-%d", i)
			switch err := repo.Create(ctx, user); {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, repository.ErrDuplicateEmail):
				dupes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), dupes.Load())
}
