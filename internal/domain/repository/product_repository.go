package repository

import (
	"context"

	"develfood/internal/domain/entity"
)

// ProductRepository defines the operations on the products collection.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int) error
}
