package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"

	"github.com/pkg/errors"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	restaurants collection[entity.Restaurant]
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *DB) repository.RestaurantRepository {
	return &restaurantRepository{restaurants: newCollection[entity.Restaurant](db, CollectionRestaurants)}
}

func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := repo.restaurants.all(ctx)
	if err != nil {
		return nil, err
	}

	return pointers(restaurants), nil
}

func (repo *restaurantRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Restaurant, error) {
	restaurant, ok, err := repo.restaurants.find(ctx, func(r entity.Restaurant) bool {
		return r.CNPJ.MatchesParam(cnpj)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return &restaurant, nil
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return repo.restaurants.append(ctx, *restaurant)
}

func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	ok, err := repo.restaurants.replace(ctx, byCNPJ(restaurant.CNPJ), *restaurant)
	if err != nil {
		return errors.Wrap(err, "failed to update restaurant")
	}
	if !ok {
		return repository.ErrRecordNotFound
	}

	return nil
}

func byCNPJ(cnpj entity.Value) func(entity.Restaurant) bool {
	return func(r entity.Restaurant) bool { return r.CNPJ.StrictEqual(cnpj) }
}
