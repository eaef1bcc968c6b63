package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"users_api/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	selectUserByCredentialsSQL = `SELECT id, username, email, password FROM users WHERE username = $1 AND password = $2`
	selectUsersSQL             = `SELECT id, username, email FROM users`
	selectUserByIDSQL          = `SELECT id, username, email FROM users WHERE id = $1`
	insertUserSQL              = `INSERT INTO users (username, email, password) VALUES ($1, $2, $3)`
	deleteUserSQL              = `DELETE FROM users WHERE id = $1`
)

// Authenticate matches username and password verbatim against the stored row.
// Returns (nil, nil) if no row matches.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByCredentialsSQL, username, password).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q by credentials: %w", username, err)
	}
	return &u, nil
}

// List returns every user without the password column.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given id as a slice of zero or one
// elements.
func (r *UserRepository) GetByID(ctx context.Context, id int) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("scan user %d: %w", id, err)
	}
	return users, nil
}

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, username, email, password string) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, username, email, password); err != nil {
		return fmt.Errorf("insert user %q: %w", username, err)
	}
	return nil
}

// Delete removes the row with the given id and reports how many rows went away.
func (r *UserRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user %d: %w", id, err)
	}
	return affected, nil
}

// scanUsers drains a (id, username, email) result set. Always returns a
// non-nil slice so callers serialize an empty JSON array rather than null.
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
