// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"secondchance/internal/delivery/api/response"
	"secondchance/internal/delivery/api/validator"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/errors"
	"secondchance/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RegisterResponse{
		Email: output.Email,
		Token: output.Token,
	})
}

// Login handles password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     output.Token,
		FirstName: output.FirstName,
		Email:     output.Email,
	})
}

// bindAndValidate decodes the JSON body into req and checks required fields.
// Both failures surface as ErrInvalidInput.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(req); err != nil {
		fields := validator.FailedFields(err)
		if len(fields) == 0 {
			return domainerrors.ErrInvalidInput
		}

		return domainerrors.ErrInvalidInput.WithDetails("missing required fields: " + strings.Join(fields, ", "))
	}

	return nil
}
