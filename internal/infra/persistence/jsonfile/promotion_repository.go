package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	promotions collection[entity.Promotion]
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *DB) repository.PromotionRepository {
	return &promotionRepository{promotions: newCollection[entity.Promotion](db, CollectionPromotions)}
}

func (repo *promotionRepository) FindAll(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := repo.promotions.all(ctx)
	if err != nil {
		return nil, err
	}

	return pointers(promotions), nil
}

func (repo *promotionRepository) FindByID(ctx context.Context, id int) (*entity.Promotion, error) {
	return findByID(ctx, repo.promotions, id)
}

func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	return repo.promotions.append(ctx, *promotion)
}

func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	return replaceByID(ctx, repo.promotions, *promotion)
}

func (repo *promotionRepository) Delete(ctx context.Context, id int) error {
	return removeByID(ctx, repo.promotions, id)
}
