package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "secondchance/internal/delivery/context"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/domain/service"
	"secondchance/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware admits requests carrying a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate verifies the bearer token and records its user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			log.Debug("Rejected session token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetUserID(c, claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, log.With(slog.String("user_id", claims.UserID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the caller authenticated by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
