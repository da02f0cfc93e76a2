package repository

import (
	"context"

	"develfood/internal/domain/entity"
)

// RestaurantRepository defines the operations on the restaurants collection.
type RestaurantRepository interface {
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByCNPJ returns ErrRecordNotFound when no restaurant has the given cnpj.
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.Restaurant, error)

	// Create appends the restaurant as given; the caller assigns the id.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update replaces the restaurant sharing restaurant.CNPJ.
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}
