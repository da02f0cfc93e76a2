package repository

import (
	"context"

	"develfood/internal/domain/entity"
)

// UserRepository gives read access to the users collection.
// Implementations may read the local store or a remote users endpoint.
type UserRepository interface {
	// FindAll returns every user in store order.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
