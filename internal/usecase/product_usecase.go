package usecase

import (
	"context"

	"develfood/internal/domain/entity"
)

// ProductInput is the body of product creation and update.
// Values are stored as sent; required fields only need to be truthy.
type ProductInput struct {
	Name        entity.Value `json:"name" form:"name" validate:"truthy"`
	Image       entity.Value `json:"image" form:"image"`
	Description entity.Value `json:"description" form:"description" validate:"truthy"`
	Price       entity.Value `json:"price" form:"price" validate:"truthy"`
	FoodTypes   entity.Value `json:"foodTypes" form:"foodTypes" validate:"truthy"`
	Available   entity.Value `json:"available" form:"available"`
}

// ProductUsecase defines the operations on products.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}
