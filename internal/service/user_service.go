package service

import (
	"context"
	"errors"

	"users_api/internal/models"
	"users_api/internal/repository"
)

// ErrUserNotFound is returned by Delete when the id matches no row.
var ErrUserNotFound = errors.New("user not found")

// UserService is a thin orchestration layer over the user repository.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetByID returns a slice of zero or one users. An unknown id is an empty
// result, not an error.
func (s *UserService) GetByID(ctx context.Context, id int) ([]models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, username, email, password string) error {
	return s.users.Create(ctx, username, email, password)
}

// Delete removes a user. Zero affected rows maps to ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id int) error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
