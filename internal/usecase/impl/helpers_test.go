package impl

import (
	"io"
	"log/slog"
	"time"

	"secondchance/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(uniformLoginErrors bool) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Token: "test-secret"},
		Auth: &config.AuthConfig{
			BcryptCost:         4,
			CallTimeout:        time.Second,
			UniformLoginErrors: uniformLoginErrors,
		},
	}
}
