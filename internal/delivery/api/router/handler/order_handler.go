package handler

import (
	"develfood/internal/delivery/api/response"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the orders collection.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders)
}

// UpdateOrderStatus handles PATCH /orders/:id, which only changes the status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req usecase.UpdateOrderStatusInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWith(c, "Pedido atualizado com sucesso!", "order", order)
}
