package repository

import (
	"context"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// UserRepository describes persistence operations with users and their roles.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	FindByRut(ctx context.Context, run, checkDigit string) ([]model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
