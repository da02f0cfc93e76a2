package impl

import (
	"context"
	"testing"

	"develfood/internal/domain/entity"
	domainerrors "develfood/internal/domain/errors"
	mockRepo "develfood/internal/mocks/repository"
	mockSvc "develfood/internal/mocks/service"
	"develfood/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

var testUsers = []*entity.User{
	{ID: 1, Email: str("ana@develfood.com"), Password: str("123456"), Name: str("Ana")},
	{ID: 2, Email: str("bruno@develfood.com"), Password: str("abcdef"), Name: str("Bruno")},
	{ID: 3, Email: str("pin@develfood.com"), Password: raw(`4321`), Name: str("Pin")},
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().FindAll(mock.Anything).Return(testUsers, nil)
	fx.tokenService.EXPECT().Issue("bruno@develfood.com", 2).Return("signed-token", nil)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    str("bruno@develfood.com"),
		Password: str("abcdef"),
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthService_Login_NumericPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().FindAll(mock.Anything).Return(testUsers, nil)
	fx.tokenService.EXPECT().Issue("pin@develfood.com", 3).Return("signed-token", nil)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    str("pin@develfood.com"),
		Password: raw(`4321`),
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
	}{
		{name: "wrong password", input: usecase.LoginInput{Email: str("ana@develfood.com"), Password: str("nope")}},
		{name: "unknown email", input: usecase.LoginInput{Email: str("zoe@develfood.com"), Password: str("123456")}},
		{name: "password of another user", input: usecase.LoginInput{Email: str("ana@develfood.com"), Password: str("abcdef")}},
		{name: "empty body", input: usecase.LoginInput{}},
		{name: "numeric password against a string", input: usecase.LoginInput{Email: str("ana@develfood.com"), Password: raw(`123456`)}},
		{name: "string password against a number", input: usecase.LoginInput{Email: str("pin@develfood.com"), Password: str("4321")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			fx.userRepo.EXPECT().FindAll(mock.Anything).Return(testUsers, nil)

			out, err := fx.service.Login(context.Background(), &tt.input)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_UserDirectoryFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("connection refused"))

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: str("ana@develfood.com"), Password: str("123456")})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
}

func TestAuthService_Login_SigningFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.EXPECT().FindAll(mock.Anything).Return(testUsers, nil)
	fx.tokenService.EXPECT().Issue("ana@develfood.com", 1).Return("", errors.New("boom"))

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: str("ana@develfood.com"), Password: str("123456")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestUserService_ListUsers(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewUserService(userRepo)

	userRepo.EXPECT().FindAll(mock.Anything).Return(testUsers, nil).Once()
	users, err := srv.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)

	userRepo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("disk gone")).Once()
	_, err = srv.ListUsers(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Erro ao buscar usuários!", appErr.Message())
}
