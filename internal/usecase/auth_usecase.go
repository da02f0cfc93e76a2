// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"develfood/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
// Fields are not validated: an empty email simply matches no user.
type LoginInput struct {
	Email    entity.Value `json:"email" form:"email"`
	Password entity.Value `json:"password" form:"password"`
}

// LoginOutput returns the token issued after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the login operation.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// UserUsecase exposes the read-only users collection.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
