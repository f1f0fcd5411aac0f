// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"secondchance/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Fields are only checked for presence; email matching is exact.
type RegisterInput struct {
	Email     string `validate:"required"`
	Password  string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput carries the session token issued for the new account.
type RegisterOutput struct {
	Email string
	Token string
	User  *entity.User
}

// LoginOutput carries the session token issued for a successful login.
type LoginOutput struct {
	Token     string
	FirstName string
	Email     string
	User      *entity.User
}

// AuthUsecase defines the registration and login flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
