package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
	pkgAuth "github.com/hoseki-store/joyeria/internal/pkg/auth"
)

// AuthUseCase handles user registration, login and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new customer account and returns an auth token. The RUT
// must carry a correct check digit; duplicate email or RUT surface as their
// own errors from the repository constraints.
func (u *AuthUseCase) Register(ctx context.Context, user *model.User, password string) (*model.User, string, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user.CheckDigit = strings.ToUpper(strings.TrimSpace(user.CheckDigit))
	if !ValidateRut(user.Run + "-" + user.CheckDigit) {
		return nil, "", domainErrors.ErrInvalidRut
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = hash

	// Every self-registered account starts as a plain customer.
	if len(user.Roles) == 0 {
		user.Roles = []model.Role{model.RoleCustomer}
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domainErrors.ErrUserNotFound {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user id from a bearer token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user, roles included.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
