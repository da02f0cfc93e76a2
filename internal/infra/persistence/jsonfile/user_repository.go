package jsonfile

import (
	"context"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	users collection[entity.User]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{users: newCollection[entity.User](db, CollectionUsers)}
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := repo.users.all(ctx)
	if err != nil {
		return nil, err
	}

	return pointers(users), nil
}
