package repository

import (
	"context"
	"database/sql"

	"users_api/internal/models"
)

// Users is the gateway to the users table. All queries are parameterized;
// user-supplied values never enter the SQL text.
type Users interface {
	// Authenticate returns the row matching both username and password
	// exactly, or (nil, nil) when no row matches.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	// List returns all users without the password column.
	List(ctx context.Context) ([]models.User, error)
	// GetByID returns zero or one users. An absent id yields an empty
	// slice, not an error.
	GetByID(ctx context.Context, id int) ([]models.User, error)
	Create(ctx context.Context, username, email, password string) error
	// Delete returns the number of rows removed; zero means the id did
	// not exist.
	Delete(ctx context.Context, id int) (int64, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
