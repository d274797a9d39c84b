package repository

import (
	"context"

	"tareas-api/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
