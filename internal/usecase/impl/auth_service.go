// Package impl contains the implementation of the application's business logic.
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
	"secondchance/internal/domain/service"
	"secondchance/internal/errors"
	"secondchance/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo           repository.UserRepository
	hasher             service.PasswordHasher
	tokenService       service.TokenService
	callTimeout        time.Duration
	uniformLoginErrors bool
	logger             *slog.Logger
	now                func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	uniform := false
	if params.Config != nil && params.Config.Auth != nil {
		uniform = params.Config.Auth.UniformLoginErrors
	}

	return &authService{
		userRepo:           params.UserRepo,
		hasher:             params.Hasher,
		tokenService:       params.TokenService,
		callTimeout:        callTimeout(params.Config),
		uniformLoginErrors: uniform,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and issues its first session token.
// An email that is already taken fails with ErrDuplicateCredential before anything is written.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(input, input == nil); err != nil {
		return nil, err
	}

	_, err := srv.findByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrDuplicateCredential)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, srv.internal(ctx, err, "failed to look up email")
	}

	passwordHash, err := runBounded(ctx, srv.callTimeout, func() (string, error) {
		return srv.hasher.Hash(input.Password)
	})
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			return nil, domainerrors.ErrInvalidInput.WithDetails("password is too long")
		}

		return nil, srv.internal(ctx, err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		CreatedAt:    srv.now().UTC(),
	}
	if err := srv.create(ctx, user); err != nil {
		// A concurrent registration won the unique index.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected by unique email index", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrDuplicateCredential)
		}

		return nil, srv.internal(ctx, err, "failed to create user")
	}

	token, err := srv.sign(ctx, user)
	if err != nil {
		return nil, srv.internal(ctx, err, "failed to sign session token")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{
		Email: user.Email,
		Token: token,
		User:  user,
	}, nil
}

// Login verifies the password for email and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validateInput(input, input == nil); err != nil {
		return nil, err
	}

	user, err := srv.findByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed, user not found", slog.String("email", input.Email))
			if srv.uniformLoginErrors {
				return nil, errors.WithStack(domainerrors.ErrInvalidCredential)
			}

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, srv.internal(ctx, err, "failed to look up user")
	}

	matched, err := runBounded(ctx, srv.callTimeout, func() (bool, error) {
		return srv.hasher.Check(input.Password, user.PasswordHash)
	})
	if err != nil {
		// An unusable stored hash is a record fault, not a wrong password.
		return nil, srv.internal(ctx, err, "failed to verify password")
	}
	if !matched {
		srv.log(ctx).Info("Login failed, wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredential)
	}

	token, err := srv.sign(ctx, user)
	if err != nil {
		return nil, srv.internal(ctx, err, "failed to sign session token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     token,
		FirstName: user.FirstName,
		Email:     user.Email,
		User:      user,
	}, nil
}

func (srv *authService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	defer cancel()

	return srv.userRepo.FindByEmail(ctx, email)
}

func (srv *authService) create(ctx context.Context, user *entity.User) error {
	ctx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	defer cancel()

	return srv.userRepo.Create(ctx, user)
}

func (srv *authService) sign(ctx context.Context, user *entity.User) (string, error) {
	claims := service.NewClaims(user.ID, srv.now())

	return runBounded(ctx, srv.callTimeout, func() (string, error) {
		return srv.tokenService.Sign(claims)
	})
}

// internal logs the cause and returns the generic ErrInternalError to the caller.
func (srv *authService) internal(ctx context.Context, err error, msg string) error {
	srv.log(ctx).Error(msg, slog.Any("error", err))

	return domainerrors.NewInternalError(err, msg)
}
