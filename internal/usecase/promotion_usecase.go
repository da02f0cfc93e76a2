package usecase

import (
	"context"

	"develfood/internal/domain/entity"
)

// PromotionInput is the body of promotion creation and update.
type PromotionInput struct {
	Name       entity.Value `json:"name" form:"name" validate:"truthy"`
	Image      entity.Value `json:"image" form:"image"`
	Percentage entity.Value `json:"percentage" form:"percentage" validate:"truthy"`
	Start      entity.Value `json:"start" form:"start" validate:"truthy"`
	End        entity.Value `json:"end" form:"end" validate:"truthy"`
}

// PromotionUsecase defines the operations on promotions.
type PromotionUsecase interface {
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)
	GetPromotion(ctx context.Context, id int) (*entity.Promotion, error)
	CreatePromotion(ctx context.Context, input *PromotionInput) (*entity.Promotion, error)
	UpdatePromotion(ctx context.Context, id int, input *PromotionInput) (*entity.Promotion, error)
	DeletePromotion(ctx context.Context, id int) error
}
