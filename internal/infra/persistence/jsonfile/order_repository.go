package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	orders collection[entity.Order]
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{orders: newCollection[entity.Order](db, CollectionOrders)}
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := repo.orders.all(ctx)
	if err != nil {
		return nil, err
	}

	return pointers(orders), nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	return findByID(ctx, repo.orders, id)
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return replaceByID(ctx, repo.orders, *order)
}
