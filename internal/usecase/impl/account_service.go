package impl

import (
	"context"
	"log/slog"
	"time"

	"secondchance/config"
	deliverycontext "secondchance/internal/delivery/context"
	"secondchance/internal/domain/entity"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/domain/repository"
	"secondchance/internal/errors"
	"secondchance/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accountService struct {
	userRepo    repository.UserRepository
	callTimeout time.Duration
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:    params.UserRepo,
		callTimeout: callTimeout(params.Config),
		logger:      params.Logger,
	}
}

// GetAccount returns the account a verified token belongs to.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	ctx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	defer cancel()

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Warn("Token subject has no account", slog.Any("userID", userID))

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}
		log.Error("failed to load account", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewInternalError(err, "failed to load account")
	}

	return user, nil
}
