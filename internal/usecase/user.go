package usecase

import (
	"context"

	"locallibrary/internal/entity"
)

// UserRepository is the contract for the auth collaborator's user
// records.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
}
