package handler

import (
	"net/http"
	"time"

	"secondchance/internal/delivery/api/middleware"
	"secondchance/internal/delivery/api/response"
	domainerrors "secondchance/internal/domain/errors"
	"secondchance/internal/errors"
	"secondchance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler serves the authenticated caller's account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{accountUC: params.AccountUC}
}

// AccountResponse is the public view of an account. The password hash is never exposed.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetAccount returns the account the bearer token belongs to
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.accountUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AccountResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	})
}
