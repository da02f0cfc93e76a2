package impl

import (
	"context"
	"log/slog"

	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/repository"
	"develfood/internal/domain/service"
	"develfood/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository `name:"userDirectory"`
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Login matches email and password against the users collection without type coercion.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	log := requestLogger(ctx, srv.logger)

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load users for login", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	for _, user := range users {
		if !user.Email.StrictEqual(input.Email) || !user.Password.StrictEqual(input.Password) {
			continue
		}

		token, err := srv.tokenService.Issue(user.Email.Text(), user.ID)
		if err != nil {
			log.Error("Failed to issue token", slog.Int("userID", user.ID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}
		log.Debug("User logged in", slog.Int("userID", user.ID))

		return &usecase.LoginOutput{Token: token}, nil
	}

	log.Warn("Login failed", slog.String("email", input.Email.Text()))

	return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "Erro ao buscar usuários!")
	}

	return users, nil
}
