package test

import (
	"context"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// TokenParserStub resolves every token to the configured user id or error.
type TokenParserStub struct {
	ID  int64
	Err error
}

// ParseToken returns configured values.
func (s TokenParserStub) ParseToken(string) (int64, error) {
	return s.ID, s.Err
}

// UserLoaderStub returns a fixed user with the configured roles.
type UserLoaderStub struct {
	Roles []model.Role
	Err   error
}

// UserByID returns the stubbed user.
func (s UserLoaderStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.User{ID: id, Roles: s.Roles}, nil
}
