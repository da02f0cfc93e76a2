package handler

import (
	"develfood/internal/delivery/api/response"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the products collection.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, products)
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Record(c, product)
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWith(c, "Produto criado com sucesso!", "product", product)
}

// UpdateProduct handles PUT /products/:id.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.MessageWith(c, "Produto atualizado com sucesso!", "product", product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Produto excluído com sucesso!")
}
