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

type promotionService struct {
	promotionRepo repository.PromotionRepository
	idStrategy    string
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: params.PromotionRepo,
		idStrategy:    idStrategy(params.Config),
		logger:        params.Logger,
	}
}

func (srv *promotionService) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := srv.promotionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "Erro ao buscar promoções!")
	}

	return promotions, nil
}

func (srv *promotionService) GetPromotion(ctx context.Context, id int) (*entity.Promotion, error) {
	promotion, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err, "Erro ao buscar promoção!")
	}

	return promotion, nil
}

func (srv *promotionService) CreatePromotion(ctx context.Context, input *usecase.PromotionInput) (*entity.Promotion, error) {
	log := requestLogger(ctx, srv.logger)

	promotions, err := srv.promotionRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load promotions", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar promoção!")
	}

	promotion := &entity.Promotion{
		ID:         nextID(srv.idStrategy, promotions),
		Name:       input.Name,
		Image:      imageOrNull(input.Image),
		Percentage: input.Percentage,
		Start:      input.Start,
		End:        input.End,
	}

	if err := srv.promotionRepo.Create(ctx, promotion); err != nil {
		log.Error("Failed to create promotion", slog.Any("error", err))

		return nil, domainerrors.NewStoreError(err, "Erro ao criar promoção!")
	}

	return promotion, nil
}

func (srv *promotionService) UpdatePromotion(ctx context.Context, id int, input *usecase.PromotionInput) (*entity.Promotion, error) {
	log := requestLogger(ctx, srv.logger)

	current, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err, "Erro ao atualizar promoção!")
	}

	updated := *current
	updated.Name = input.Name
	updated.Image = imageOrPrevious(input.Image, current.Image)
	updated.Percentage = input.Percentage
	updated.Start = input.Start
	updated.End = input.End

	if err := srv.promotionRepo.Update(ctx, &updated); err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			log.Error("Failed to update promotion", slog.Int("id", id), slog.Any("error", err))
		}

		return nil, srv.lookupError(err, "Erro ao atualizar promoção!")
	}

	return &updated, nil
}

func (srv *promotionService) DeletePromotion(ctx context.Context, id int) error {
	if err := srv.promotionRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			requestLogger(ctx, srv.logger).Error("Failed to delete promotion", slog.Int("id", id), slog.Any("error", err))
		}

		return srv.lookupError(err, "Erro ao excluir promoção!")
	}

	return nil
}

func (srv *promotionService) lookupError(err error, message string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errors.WithStack(domainerrors.ErrPromotionNotFound)
	}

	return domainerrors.NewStoreError(err, message)
}
