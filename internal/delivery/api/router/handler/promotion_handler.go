package handler

import (
	"develfood/internal/delivery/api/response"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
}

// PromotionHandler serves the promotions collection.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler.
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{promotionUC: params.PromotionUC}
}

// ListPromotions handles GET /promotions.
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.promotionUC.ListPromotions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, promotions)
}

// GetPromotion handles GET /promotions/:id.
func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrPromotionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	promotion, err := h.promotionUC.GetPromotion(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Record(c, promotion)
}

// CreatePromotion handles POST /promotions.
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var req usecase.PromotionInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	promotion, err := h.promotionUC.CreatePromotion(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWith(c, "Promoção criada com sucesso!", "promotion", promotion)
}

// UpdatePromotion handles PUT /promotions/:id.
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	var req usecase.PromotionInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrPromotionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	promotion, err := h.promotionUC.UpdatePromotion(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWith(c, "Promoção atualizada com sucesso!", "promotion", promotion)
}

// DeletePromotion handles DELETE /promotions/:id.
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrPromotionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.promotionUC.DeletePromotion(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Promoção excluída com sucesso!")
}
