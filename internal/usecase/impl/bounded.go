package impl

import (
	"context"
	"strings"
	"time"

	"secondchance/config"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/errors"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

func callTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.CallTimeout <= 0 {
		return config.DefaultCallTimeout
	}

	return cfg.Auth.CallTimeout
}

// runBounded runs a call that cannot observe ctx and gives up once ctx or timeout expires.
// An abandoned call finishes in the background; its result is discarded.
func runBounded[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := fn()
		done <- result{val: val, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		var zero T

		return zero, errors.WithStack(ctx.Err())
	}
}

// validateInput rejects nil or incomplete input with ErrInvalidInput naming the missing fields.
// Field values are never echoed back.
func validateInput(input any, isNil bool) error {
	if isNil {
		return domainerrors.ErrInvalidInput.WithDetails("request body is required")
	}

	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrInvalidInput
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}

	return domainerrors.ErrInvalidInput.WithDetails("missing required fields: " + strings.Join(fields, ", "))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
