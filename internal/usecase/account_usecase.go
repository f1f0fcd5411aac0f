package usecase

import (
	"context"

	"secondchance/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase serves the authenticated caller's own account.
type AccountUsecase interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
