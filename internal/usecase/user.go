package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
)

// UserUseCase exposes the staff-facing user directory operations.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// FindByRut validates the full RUT before looking it up, matching the legacy
// behavior of rejecting malformed input instead of returning nothing.
func (u *UserUseCase) FindByRut(ctx context.Context, rut string) ([]model.User, error) {
	if !ValidateRut(rut) {
		return nil, domainErrors.ErrInvalidRut
	}
	parts := strings.SplitN(rut, "-", 2)
	return u.users.FindByRut(ctx, parts[0], strings.ToUpper(parts[1]))
}

// Update changes profile fields only; RUT, password and roles stay put.
func (u *UserUseCase) Update(ctx context.Context, user *model.User) (*model.User, error) {
	return u.users.Update(ctx, user)
}

func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
