// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"secondchance/internal/domain/entity"
	"secondchance/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user record matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned by Create when the store's unique email
	// constraint rejects the insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the credential store. Implementations must enforce email
// uniqueness themselves; callers treat ErrDuplicateEmail from Create as authoritative.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user. On success the store fills in ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
}
