package handler

import (
	"log/slog"
	"net/url"

	"develfood/internal/delivery/api/response"
	deliverycontext "develfood/internal/delivery/context"
	"develfood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves the restaurants collection.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// ListRestaurants handles GET /restaurants.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, restaurants)
}

// CreateRestaurant handles the public signup, POST /restaurants.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req usecase.CreateRestaurantInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Restaurante criado com sucesso!")
}

// UpdateRestaurant handles PUT /restaurants/:cnpj. The gate has already verified the token.
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	var req usecase.UpdateRestaurantInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	// A cnpj may contain "/" and reach the router percent-encoded.
	cnpj, err := url.PathUnescape(c.Param("cnpj"))
	if err != nil {
		cnpj = c.Param("cnpj")
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), cnpj, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if claims, ok := deliverycontext.GetClaims(c); ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Restaurant updated",
			slog.String("cnpj", restaurant.CNPJ.Text()),
			slog.String("by", claims.Email),
		)
	}

	return response.MessageWith(c, "Restaurante atualizado com sucesso!", "restaurant", restaurant)
}
