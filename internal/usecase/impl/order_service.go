package impl

import (
	"context"
	"log/slog"

	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	"develfood/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "Erro ao buscar pedidos!")
	}

	return orders, nil
}

// UpdateOrderStatus changes only the status; every other order field is kept as stored.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id int, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	current, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err)
	}

	updated := current.WithStatus(input.Status)
	if err := srv.orderRepo.Update(ctx, &updated); err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			requestLogger(ctx, srv.logger).Error("Failed to update order status",
				slog.Int("id", id),
				slog.String("status", input.Status.Text()),
				slog.Any("error", err),
			)
		}

		return nil, srv.lookupError(err)
	}

	return &updated, nil
}

func (srv *orderService) lookupError(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return domainerrors.NewStoreError(err, "Erro ao atualizar pedido!")
}
