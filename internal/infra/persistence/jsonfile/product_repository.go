package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	products collection[entity.Product]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{products: newCollection[entity.Product](db, CollectionProducts)}
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := repo.products.all(ctx)
	if err != nil {
		return nil, err
	}

	return pointers(products), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	return findByID(ctx, repo.products, id)
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return repo.products.append(ctx, *product)
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return replaceByID(ctx, repo.products, *product)
}

func (repo *productRepository) Delete(ctx context.Context, id int) error {
	return removeByID(ctx, repo.products, id)
}
