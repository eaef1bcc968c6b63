package service

import (
	"context"

	"users_api/internal/models"
	"users_api/internal/repository"
)

// Authorization issues and verifies bearer tokens.
type Authorization interface {
	// GenerateToken checks the credentials against the store and returns
	// a signed token carrying the username.
	GenerateToken(ctx context.Context, username, password string) (string, error)
	// ParseToken verifies a token and returns the embedded username.
	ParseToken(accessToken string) (string, error)
}

// Users exposes CRUD over the users table.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) ([]models.User, error)
	Create(ctx context.Context, username, email, password string) error
	Delete(ctx context.Context, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
}

// NewService wires the repository layer into concrete services. The JWT
// signing key comes from configuration and is injected here.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Users:         NewUserService(repos.Users),
	}
}
