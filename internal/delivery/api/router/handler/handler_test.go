package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "secondchance/internal/delivery/api/middleware"
	"secondchance/internal/delivery/api/response"
	"secondchance/internal/delivery/api/validator"
	deliverycontext "secondchance/internal/delivery/context"
	"secondchance/internal/domain/entity"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/errors"
	mockUC "secondchance/internal/mocks/usecase"
	"secondchance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: slog.Default()})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return e, authUC
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Email: "alice@example.com", Password: "pw123", FirstName: "Alice", LastName: "A",
		}).
		Return(&usecase.RegisterOutput{Email: "alice@example.com", Token: "tok"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"pw123","firstName":"Alice","lastName":"A"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[RegisterResponse](t, rec)
	assert.Equal(t, RegisterResponse{Email: "alice@example.com", Token: "tok"}, got)
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "duplicate", body: `{"email":"a@x.io","password":"p","firstName":"A","lastName":"B"}`, ucErr: domainerrors.ErrDuplicateCredential, wantStatus: http.StatusBadRequest, wantCode: "DUPLICATE_CREDENTIAL"},
		{name: "internal", body: `{"email":"a@x.io","password":"p","firstName":"A","lastName":"B"}`, ucErr: domainerrors.NewInternalError(errors.New("db down"), "failed to create user"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "missing fields", body: `{"email":"a@x.io"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestServer(t)
			if tt.ucErr != nil {
				authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doJSON(e, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestAuthHandler_Register_MissingFieldsNamed(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"a@x.io","password":"secret"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "missing required fields: firstName, lastName", info.Details)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "user not found", ucErr: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
		{name: "wrong password", ucErr: domainerrors.ErrInvalidCredential, wantStatus: http.StatusNotFound, wantCode: "INVALID_CREDENTIAL"},
		{name: "internal", ucErr: domainerrors.NewInternalError(errors.New("sign"), "failed to sign"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestServer(t)
			call := authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "pw123"})
			if tt.ucErr != nil {
				call.Return(nil, tt.ucErr)
			} else {
				call.Return(&usecase.LoginOutput{Token: "tok", FirstName: "Alice", Email: "alice@example.com"}, nil)
			}

			rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"pw123"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.ucErr != nil {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}
			got := decodeData[LoginResponse](t, rec)
			assert.Equal(t, LoginResponse{Token: "tok", FirstName: "Alice", Email: "alice@example.com"}, got)
		})
	}
}

func TestAuthHandler_Login_InvalidInput(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestAccountHandler_GetAccount(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "A",
		PasswordHash: "$2a$10$secret-hash",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	accountUC.EXPECT().GetAccount(mock.Anything, user.ID).Return(user, nil)

	e := newTestEcho()
	e.GET("/api/v1/account", h.GetAccount, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, user.ID)

			return next(c)
		}
	})

	rec := doJSON(e, http.MethodGet, "/api/v1/account", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[AccountResponse](t, rec)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Alice", got.FirstName)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAccountHandler_RequiresUser(t *testing.T) {
	h := NewAccountHandler(AccountHandlerParams{AccountUC: mockUC.NewMockAccountUsecase(t)})
	e := newTestEcho()
	e.GET("/api/v1/account", h.GetAccount)

	rec := doJSON(e, http.MethodGet, "/api/v1/account", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doJSON(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, rec))
}
