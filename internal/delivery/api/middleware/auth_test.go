package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "secondchance/internal/delivery/context"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/domain/service"
	"secondchance/internal/errors"
	mockSvc "secondchance/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenService := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenService
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mw, tokenService := newAuthMiddleware(t)
	userID := uuid.New()
	claims := service.Claims{UserID: userID}
	tokenService.EXPECT().Verify("good-token").Return(&claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	called := false
	err := mw.Authenticate(func(c echo.Context) error {
		called = true
		got, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer   "},
		{name: "invalid token", header: "bearer bad-token", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, tokenService := newAuthMiddleware(t)
			if tt.verify {
				tokenService.EXPECT().Verify("bad-token").Return(nil, errors.WithStack(service.ErrInvalidToken))
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/account", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := mw.Authenticate(func(c echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
