package handler

import (
	"develfood/internal/delivery/api/response"
	"develfood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
}

// UserHandler serves the users collection and login.
type UserHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
		userUC: params.UserUC,
	}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, users)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		// An unreadable body carries no credentials to match.
		req = usecase.LoginInput{}
	}

	out, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Record(c, out)
}
