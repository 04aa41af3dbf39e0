package service

import (
	"context"
	"errors"
	"fmt"

	"marketplace/ecommerce/internal/model"
	"marketplace/ecommerce/internal/repository"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Save(ctx context.Context, u model.User) (model.User, error)
}

type AuthService struct {
	store  UserStore
	hasher PasswordHasher
}

func NewAuthService(store UserStore, hasher PasswordHasher) *AuthService {
	if hasher == nil {
		hasher = PlainHasher{}
	}
	return &AuthService{store: store, hasher: hasher}
}

// Register creates a user unless one with the same email exists. The check
// and the insert are separate statements, so concurrent registrations of
// one email can both succeed.
func (s *AuthService) Register(ctx context.Context, email, password string) (model.User, error) {
	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return model.User{}, ErrEmailExists
	case !errors.Is(err, repository.ErrNotFound):
		return model.User{}, err
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.Save(ctx, model.User{Email: email, Password: stored})
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}

	if !s.hasher.Matches(u.Password, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}
