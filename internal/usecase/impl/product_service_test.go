package impl

import (
	"context"
	"encoding/json"
	"testing"

	"develfood/config"
	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	mockRepo "develfood/internal/mocks/repository"
	"develfood/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T, strategy string) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			Config:      newTestConfig(strategy),
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
	}
}

func newPizzaInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        str("Pizza"),
		Description: str("Mussarela"),
		Price:       raw(`42.5`),
		FoodTypes:   raw(`["pizza"]`),
	}
}

func TestProductService_CreateProduct_EmptyImageBecomesNull(t *testing.T) {
	fx := createTestProductService(t, config.IDStrategyLength)

	fx.productRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Product{}, nil)
	fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	input := newPizzaInput()
	input.Image = str("")

	product, err := fx.service.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, entity.NullValue, product.Image)
	assert.True(t, product.Available.IsAbsent())
}

func TestProductService_CreateProduct_StoresValuesAsSent(t *testing.T) {
	fx := createTestProductService(t, config.IDStrategyLength)

	fx.productRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Product{}, nil)
	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := newPizzaInput()
	input.Price = str("20")
	input.Available = str("false")

	product, err := fx.service.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, `"20"`, string(product.Price))
	assert.Equal(t, `"false"`, string(product.Available))
}

func TestProductService_CreateProduct_IDStrategies(t *testing.T) {
	// [1, 3] is what remains of [1, 2, 3] after deleting id 2.
	afterDelete := []*entity.Product{{ID: 1}, {ID: 3}}

	tests := []struct {
		name     string
		strategy string
		wantID   int
	}{
		{name: "length reuses a live id", strategy: config.IDStrategyLength, wantID: 3},
		{name: "max never collides", strategy: config.IDStrategyMax, wantID: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t, tt.strategy)
			fx.productRepo.EXPECT().FindAll(mock.Anything).Return(afterDelete, nil)
			fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

			product, err := fx.service.CreateProduct(context.Background(), newPizzaInput())
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, product.ID)
		})
	}
}

func TestProductService_CreateProduct_ConcurrentCreatesShareID(t *testing.T) {
	fx := createTestProductService(t, config.IDStrategyLength)

	// Both creates read the collection before either has appended.
	snapshot := []*entity.Product{{ID: 1}}
	fx.productRepo.EXPECT().FindAll(mock.Anything).Return(snapshot, nil).Twice()
	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := fx.service.CreateProduct(context.Background(), newPizzaInput())
	require.NoError(t, err)
	second, err := fx.service.CreateProduct(context.Background(), newPizzaInput())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestProductService_UpdateProduct(t *testing.T) {
	current := &entity.Product{
		ID:          7,
		Name:        str("Pizza"),
		Image:       str("https://img/pizza.png"),
		Description: str("Mussarela"),
		Price:       raw(`40`),
		FoodTypes:   raw(`["pizza"]`),
		Available:   raw(`true`),
		Extra:       entity.Extra{"restaurantId": json.RawMessage(`7`)},
	}

	t.Run("keeps image and clears availability", func(t *testing.T) {
		fx := createTestProductService(t, config.IDStrategyLength)
		fx.productRepo.EXPECT().FindByID(mock.Anything, 7).Return(current, nil)
		fx.productRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		input := newPizzaInput()
		input.Price = raw(`45`)

		updated, err := fx.service.UpdateProduct(context.Background(), 7, input)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.ID)
		assert.Equal(t, "https://img/pizza.png", updated.Image.Text())
		assert.True(t, updated.Available.IsAbsent())
		assert.Equal(t, `45`, string(updated.Price))
		assert.JSONEq(t, `7`, string(updated.Extra["restaurantId"]))
	})

	t.Run("replaces image", func(t *testing.T) {
		fx := createTestProductService(t, config.IDStrategyLength)
		fx.productRepo.EXPECT().FindByID(mock.Anything, 7).Return(current, nil)
		fx.productRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		input := newPizzaInput()
		input.Image = str("https://img/new.png")
		input.Available = raw(`false`)

		updated, err := fx.service.UpdateProduct(context.Background(), 7, input)
		require.NoError(t, err)
		assert.Equal(t, "https://img/new.png", updated.Image.Text())
		assert.Equal(t, `false`, string(updated.Available))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestProductService(t, config.IDStrategyLength)
		fx.productRepo.EXPECT().FindByID(mock.Anything, 99).Return(nil, repository.ErrRecordNotFound)

		_, err := fx.service.UpdateProduct(context.Background(), 99, newPizzaInput())
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	fx := createTestProductService(t, config.IDStrategyLength)

	fx.productRepo.EXPECT().FindByID(mock.Anything, 1).Return(&entity.Product{ID: 1, Name: str("Pizza")}, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, 2).Return(nil, repository.ErrRecordNotFound)

	product, err := fx.service.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", product.Name.Text())

	_, err = fx.service.GetProduct(context.Background(), 2)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t, config.IDStrategyLength)

	fx.productRepo.EXPECT().Delete(mock.Anything, 1).Return(nil)
	fx.productRepo.EXPECT().Delete(mock.Anything, 2).Return(repository.ErrRecordNotFound)
	fx.productRepo.EXPECT().Delete(mock.Anything, 3).Return(errors.New("disk full"))

	require.NoError(t, fx.service.DeleteProduct(context.Background(), 1))
	assert.ErrorIs(t, fx.service.DeleteProduct(context.Background(), 2), domainerrors.ErrProductNotFound)

	err := fx.service.DeleteProduct(context.Background(), 3)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Erro ao excluir produto!", appErr.Message())
}
