package usecase

import (
	"context"

	"develfood/internal/domain/entity"
)

// UpdateOrderStatusInput is the body of PATCH /orders/:id.
type UpdateOrderStatusInput struct {
	Status entity.Value `json:"status" form:"status" validate:"truthy"`
}

// OrderUsecase defines the operations on orders.
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, input *UpdateOrderStatusInput) (*entity.Order, error)
}
