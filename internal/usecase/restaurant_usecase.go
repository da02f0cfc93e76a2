package usecase

import (
	"context"

	"develfood/internal/domain/entity"
)

// CreateRestaurantInput is the public signup form of a restaurant. Every field is required.
type CreateRestaurantInput struct {
	CNPJ         entity.Value `json:"cnpj" form:"cnpj" validate:"truthy"`
	Name         entity.Value `json:"name" form:"name" validate:"truthy"`
	Phone        entity.Value `json:"phone" form:"phone" validate:"truthy"`
	Email        entity.Value `json:"email" form:"email" validate:"truthy"`
	Password     entity.Value `json:"password" form:"password" validate:"truthy"`
	FoodTypes    entity.Value `json:"foodTypes" form:"foodTypes" validate:"truthy"`
	Nickname     entity.Value `json:"nickname" form:"nickname" validate:"truthy"`
	Zipcode      entity.Value `json:"zipcode" form:"zipcode" validate:"truthy"`
	Street       entity.Value `json:"street" form:"street" validate:"truthy"`
	Neighborhood entity.Value `json:"neighborhood" form:"neighborhood" validate:"truthy"`
	City         entity.Value `json:"city" form:"city" validate:"truthy"`
	State        entity.Value `json:"state" form:"state" validate:"truthy"`
	Number       entity.Value `json:"number" form:"number" validate:"truthy"`
}

// UpdateRestaurantInput replaces a restaurant's profile. The cnpj comes from the path;
// an empty password keeps the current one.
type UpdateRestaurantInput struct {
	Name         entity.Value `json:"name" form:"name" validate:"truthy"`
	Phone        entity.Value `json:"phone" form:"phone" validate:"truthy"`
	Email        entity.Value `json:"email" form:"email" validate:"truthy"`
	Password     entity.Value `json:"password" form:"password"`
	FoodTypes    entity.Value `json:"foodTypes" form:"foodTypes" validate:"truthy"`
	Nickname     entity.Value `json:"nickname" form:"nickname" validate:"truthy"`
	Zipcode      entity.Value `json:"zipcode" form:"zipcode" validate:"truthy"`
	Street       entity.Value `json:"street" form:"street" validate:"truthy"`
	Neighborhood entity.Value `json:"neighborhood" form:"neighborhood" validate:"truthy"`
	City         entity.Value `json:"city" form:"city" validate:"truthy"`
	State        entity.Value `json:"state" form:"state" validate:"truthy"`
	Number       entity.Value `json:"number" form:"number" validate:"truthy"`
}

// RestaurantUsecase defines the operations on restaurants.
type RestaurantUsecase interface {
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, cnpj string, input *UpdateRestaurantInput) (*entity.Restaurant, error)
}
