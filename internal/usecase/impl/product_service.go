package impl

import (
	"context"
	"log/slog"

	"develfood/config"
	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	"develfood/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	idStrategy  string
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		idStrategy:  idStrategy(params.Config),
		logger:      params.Logger,
	}
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "Erro ao buscar produtos!")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err, "Erro ao buscar produto!")
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	log := requestLogger(ctx, srv.logger)

	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load products", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar produto!")
	}

	product := &entity.Product{
		ID:          nextID(srv.idStrategy, products),
		Name:        input.Name,
		Image:       imageOrNull(input.Image),
		Description: input.Description,
		Price:       input.Price,
		FoodTypes:   input.FoodTypes,
		Available:   input.Available,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		log.Error("Failed to create product", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar produto!")
	}

	return product, nil
}

// UpdateProduct overwrites every field; an empty image keeps the stored one.
func (srv *productService) UpdateProduct(ctx context.Context, id int, input *usecase.ProductInput) (*entity.Product, error) {
	log := requestLogger(ctx, srv.logger)

	current, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err, "Erro ao atualizar produto!")
	}

	updated := *current
	updated.Name = input.Name
	updated.Image = imageOrPrevious(input.Image, current.Image)
	updated.Description = input.Description
	updated.Price = input.Price
	updated.FoodTypes = input.FoodTypes
	updated.Available = input.Available

	if err := srv.productRepo.Update(ctx, &updated); err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			log.Error("Failed to update product", slog.Int("id", id), slog.Any("error", err))
		}

		return nil, srv.lookupError(err, "Erro ao atualizar produto!")
	}

	return &updated, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id int) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			requestLogger(ctx, srv.logger).Error("Failed to delete product", slog.Int("id", id), slog.Any("error", err))
		}

		return srv.lookupError(err, "Erro ao excluir produto!")
	}

	return nil
}

func (srv *productService) lookupError(err error, message string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return domainerrors.NewStoreError(err, message)
}
