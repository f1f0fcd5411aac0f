package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"secondchance/internal/delivery/api/response"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "duplicate", err: errors.WithStack(domainerrors.ErrDuplicateCredential), wantStatus: http.StatusBadRequest, wantCode: "DUPLICATE_CREDENTIAL"},
		{name: "invalid input", err: domainerrors.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "user not found", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
		{name: "wrong password", err: domainerrors.ErrInvalidCredential, wantStatus: http.StatusNotFound, wantCode: "INVALID_CREDENTIAL"},
		{name: "unauthorized", err: domainerrors.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_DetailsOnlyFor4xx(t *testing.T) {
	_, body := handleError(t, domainerrors.ErrInvalidInput.WithDetails("missing required fields: email"))
	assert.Equal(t, "missing required fields: email", body.Error.Details)

	rec, body := handleError(t, domainerrors.NewInternalError(errors.New("pq: password authentication failed"), "failed to create user"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "password authentication")
}

func TestErrorMiddleware_EchoAndUnknownErrors(t *testing.T) {
	rec, body := handleError(t, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)

	rec, body = handleError(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
