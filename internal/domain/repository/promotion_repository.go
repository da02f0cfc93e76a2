package repository

import (
	"context"

	"develfood/internal/domain/entity"
)

// PromotionRepository defines the operations on the promotions collection.
type PromotionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Promotion, error)
	FindByID(ctx context.Context, id int) (*entity.Promotion, error)
	Create(ctx context.Context, promotion *entity.Promotion) error
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id int) error
}
