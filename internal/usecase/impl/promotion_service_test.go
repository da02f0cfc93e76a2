package impl

import (
	"context"
	"testing"

	"develfood/config"
	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	mockRepo "develfood/internal/mocks/repository"
	"develfood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPromotionService(t *testing.T) (usecase.PromotionUsecase, *mockRepo.MockPromotionRepository) {
	promotionRepo := mockRepo.NewMockPromotionRepository(t)

	return NewPromotionService(PromotionServiceParams{
		PromotionRepo: promotionRepo,
		Config:        newTestConfig(config.IDStrategyMax),
		Logger:        newDiscardLogger(),
	}), promotionRepo
}

func newPromotionInput() *usecase.PromotionInput {
	return &usecase.PromotionInput{
		Name:       str("Terça da Pizza"),
		Percentage: raw(`15`),
		Start:      str("2024-01-01"),
		End:        str("2024-01-31"),
	}
}

func TestPromotionService_CreatePromotion(t *testing.T) {
	srv, repo := createTestPromotionService(t)

	repo.EXPECT().FindAll(mock.Anything).Return([]*entity.Promotion{{ID: 5}}, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Promotion")).Return(nil)

	promotion, err := srv.CreatePromotion(context.Background(), newPromotionInput())
	require.NoError(t, err)
	assert.Equal(t, 6, promotion.ID)
	assert.Equal(t, entity.NullValue, promotion.Image)
	assert.Equal(t, "2024-01-31", promotion.End.Text())
}

func TestPromotionService_CreatePromotion_StringPercentage(t *testing.T) {
	srv, repo := createTestPromotionService(t)

	repo.EXPECT().FindAll(mock.Anything).Return([]*entity.Promotion{}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := newPromotionInput()
	input.Percentage = str("10")

	promotion, err := srv.CreatePromotion(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, promotion.ID)
	assert.Equal(t, `"10"`, string(promotion.Percentage))
}

func TestPromotionService_UpdatePromotion(t *testing.T) {
	srv, repo := createTestPromotionService(t)
	current := &entity.Promotion{ID: 2, Name: str("Antiga"), Image: str("banner.png"), Percentage: raw(`10`)}

	repo.EXPECT().FindByID(mock.Anything, 2).Return(current, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	input := newPromotionInput()
	input.Image = str("")

	updated, err := srv.UpdatePromotion(context.Background(), 2, input)
	require.NoError(t, err)
	assert.Equal(t, "Terça da Pizza", updated.Name.Text())
	assert.Equal(t, "banner.png", updated.Image.Text())
	assert.Equal(t, `15`, string(updated.Percentage))
}

func TestPromotionService_NotFound(t *testing.T) {
	srv, repo := createTestPromotionService(t)

	repo.EXPECT().FindByID(mock.Anything, 9).Return(nil, repository.ErrRecordNotFound)
	repo.EXPECT().Delete(mock.Anything, 9).Return(repository.ErrRecordNotFound)

	_, err := srv.GetPromotion(context.Background(), 9)
	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)

	_, err = srv.UpdatePromotion(context.Background(), 9, newPromotionInput())
	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)

	assert.ErrorIs(t, srv.DeletePromotion(context.Background(), 9), domainerrors.ErrPromotionNotFound)
}
