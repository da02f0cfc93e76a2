package repository

import (
	"context"

	"develfood/internal/domain/entity"
)

// OrderRepository defines the operations on the orders collection.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByID(ctx context.Context, id int) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
