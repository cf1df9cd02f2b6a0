package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

type stubUserRepo struct {
	created *model.User
	user    *model.User
	err     error
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = user
	out := *user
	out.ID = 11
	return &out, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return s.user, s.err
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return s.user, s.err
}

func (s *stubUserRepo) FindByRut(ctx context.Context, run, checkDigit string) ([]model.User, error) {
	if s.user == nil {
		return nil, nil
	}
	return []model.User{*s.user}, nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]model.User, error) { return nil, s.err }

func (s *stubUserRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	return user, s.err
}

func (s *stubUserRepo) Delete(ctx context.Context, id int64) error { return s.err }

type stubHasher struct {
	compareErr error
}

func (s *stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (s *stubHasher) Compare(hash, password string) error { return s.compareErr }

type stubStrategy struct {
	issued string
	userID int64
	err    error
}

func (s *stubStrategy) IssueToken(userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.issued, nil
}

func (s *stubStrategy) ParseToken(token string) (int64, error) { return s.userID, s.err }

func (s *stubStrategy) Name() string { return "stub" }

func TestRegisterDefaultsToCustomerRole(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewAuthUseCase(repo, &stubHasher{}, &stubStrategy{issued: "tok"})

	user := &model.User{Run: "12345678", CheckDigit: "5", Name: "Ana", Email: " ana@example.cl "}
	created, token, err := uc.Register(context.Background(), user, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok" {
		t.Fatalf("expected issued token, got %q", token)
	}
	if created.ID != 11 {
		t.Fatalf("expected persisted id, got %d", created.ID)
	}
	if repo.created.Email != "ana@example.cl" {
		t.Fatalf("email not trimmed: %q", repo.created.Email)
	}
	if repo.created.PasswordHash != "hashed:secret" {
		t.Fatalf("password not hashed: %q", repo.created.PasswordHash)
	}
	if len(repo.created.Roles) != 1 || repo.created.Roles[0] != model.RoleCustomer {
		t.Fatalf("expected default customer role, got %v", repo.created.Roles)
	}
}

func TestRegisterRejectsBadCheckDigit(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewAuthUseCase(repo, &stubHasher{}, &stubStrategy{issued: "tok"})

	user := &model.User{Run: "12345678", CheckDigit: "4", Email: "ana@example.cl"}
	_, _, err := uc.Register(context.Background(), user, "secret")
	if !errors.Is(err, domainErrors.ErrInvalidRut) {
		t.Fatalf("expected ErrInvalidRut, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("user must not be persisted with an invalid RUT")
	}
}

func TestRegisterNormalizesLowercaseK(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewAuthUseCase(repo, &stubHasher{}, &stubStrategy{issued: "tok"})

	user := &model.User{Run: "6", CheckDigit: "k", Email: "k@example.cl"}
	if _, _, err := uc.Register(context.Background(), user, "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created.CheckDigit != "K" {
		t.Fatalf("check digit not normalized: %q", repo.created.CheckDigit)
	}
}

func TestAuthenticate(t *testing.T) {
	known := &model.User{ID: 11, Email: "ana@example.cl", PasswordHash: "hashed:secret"}

	t.Run("success", func(t *testing.T) {
		uc := NewAuthUseCase(&stubUserRepo{user: known}, &stubHasher{}, &stubStrategy{issued: "tok"})
		usr, token, err := uc.Authenticate(context.Background(), "ana@example.cl", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if usr.ID != 11 || token != "tok" {
			t.Fatalf("got user %+v token %q", usr, token)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUseCase(&stubUserRepo{}, &stubHasher{}, &stubStrategy{issued: "tok"})
		_, _, err := uc.Authenticate(context.Background(), "nobody@example.cl", "secret")
		if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(&stubUserRepo{user: known}, &stubHasher{compareErr: errors.New("mismatch")}, &stubStrategy{issued: "tok"})
		_, _, err := uc.Authenticate(context.Background(), "ana@example.cl", "bad")
		if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserFindByRutValidatesInput(t *testing.T) {
	uc := NewUserUseCase(&stubUserRepo{})
	if _, err := uc.FindByRut(context.Background(), "12345678-4"); !errors.Is(err, domainErrors.ErrInvalidRut) {
		t.Fatalf("expected ErrInvalidRut, got %v", err)
	}

	known := &model.User{ID: 11, Run: "12345678", CheckDigit: "5"}
	uc = NewUserUseCase(&stubUserRepo{user: known})
	users, err := uc.FindByRut(context.Background(), "12345678-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].ID != 11 {
		t.Fatalf("unexpected result: %+v", users)
	}
}
