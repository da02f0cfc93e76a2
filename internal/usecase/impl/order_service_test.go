package impl

import (
	"context"
	"encoding/json"
	"testing"

	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	mockRepo "develfood/internal/mocks/repository"
	"develfood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	srv := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	current := &entity.Order{
		ID:     3,
		Status: str("pending"),
		Extra:  entity.Extra{"total": json.RawMessage(`59.9`)},
	}
	orderRepo.EXPECT().FindByID(mock.Anything, 3).Return(current, nil)
	orderRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.ID == 3 && o.Status.EqualString("delivered") && string(o.Extra["total"]) == "59.9"
		})).
		Return(nil)

	updated, err := srv.UpdateOrderStatus(context.Background(), 3, &usecase.UpdateOrderStatusInput{Status: str("delivered")})
	require.NoError(t, err)
	assert.Equal(t, "delivered", updated.Status.Text())
	assert.Equal(t, "pending", current.Status.Text())
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	srv := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	orderRepo.EXPECT().FindByID(mock.Anything, 8).Return(nil, repository.ErrRecordNotFound)

	_, err := srv.UpdateOrderStatus(context.Background(), 8, &usecase.UpdateOrderStatusInput{Status: str("delivered")})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	srv := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	orderRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{{ID: 1}, {ID: 2}}, nil)

	orders, err := srv.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
