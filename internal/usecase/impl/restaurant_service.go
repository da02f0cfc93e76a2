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

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	idStrategy     string
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		idStrategy:     idStrategy(params.Config),
		logger:         params.Logger,
	}
}

func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "Erro ao buscar restaurantes!")
	}

	return restaurants, nil
}

// CreateRestaurant registers a restaurant unless its cnpj is already taken.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	log := requestLogger(ctx, srv.logger)

	restaurants, err := srv.restaurantRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load restaurants", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar restaurante!")
	}

	for _, r := range restaurants {
		if r.CNPJ.StrictEqual(input.CNPJ) {
			return nil, errors.WithStack(domainerrors.ErrCNPJAlreadyExists)
		}
	}

	restaurant := &entity.Restaurant{
		ID:           nextID(srv.idStrategy, restaurants),
		CNPJ:         input.CNPJ,
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Password:     input.Password,
		FoodTypes:    input.FoodTypes,
		Nickname:     input.Nickname,
		Zipcode:      input.Zipcode,
		Street:       input.Street,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		Number:       input.Number,
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		log.Error("Failed to create restaurant", slog.String("cnpj", input.CNPJ.Text()), slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar restaurante!")
	}
	log.Info("Restaurant created", slog.Int("id", restaurant.ID), slog.String("cnpj", restaurant.CNPJ.Text()))

	return restaurant, nil
}

// UpdateRestaurant overwrites the profile of the restaurant registered under cnpj.
func (srv *restaurantService) UpdateRestaurant(ctx context.Context, cnpj string, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	log := requestLogger(ctx, srv.logger)

	current, err := srv.restaurantRepo.FindByCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRestaurantNotFound)
		}

		return nil, domainerrors.NewStoreError(err, "Erro ao atualizar restaurante!")
	}

	updated := *current
	updated.Name = input.Name
	updated.Phone = input.Phone
	updated.Email = input.Email
	if input.Password.Truthy() {
		updated.Password = input.Password
	}
	updated.FoodTypes = input.FoodTypes
	updated.Nickname = input.Nickname
	updated.Zipcode = input.Zipcode
	updated.Street = input.Street
	updated.Neighborhood = input.Neighborhood
	updated.City = input.City
	updated.State = input.State
	updated.Number = input.Number

	if err := srv.restaurantRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRestaurantNotFound)
		}
		log.Error("Failed to update restaurant", slog.String("cnpj", cnpj), slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao atualizar restaurante!")
	}

	return &updated, nil
}
