package errors

import (
	"net/http"
	"testing"

	"secondchance/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrDuplicateCredential.WrapMessage("register")

	assert.True(t, errors.Is(err, ErrDuplicateCredential))
	assert.False(t, errors.Is(err, ErrUserNotFound))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_CREDENTIAL", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrInvalidInput.WithDetails("email is required")

	assert.True(t, errors.Is(err, ErrInvalidInput))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email is required", appErr.Details())
	assert.Empty(t, ErrInvalidInput.Details())
}

func TestInternalError_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewInternalError(cause, "failed to find user")

	assert.True(t, errors.Is(err, ErrInternalError))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "INTERNAL_ERROR", err.ErrorCode())
	assert.Equal(t, "Internal server error", err.Message())
	assert.Empty(t, err.Details())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLoginErrors_MapToNotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode())
	assert.Equal(t, http.StatusNotFound, ErrInvalidCredential.HTTPCode())
}
