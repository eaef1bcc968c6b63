package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"users_api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestUserRepository_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    string
	}{
		{
			name:     "match",
			username: "alice",
			password: "pw",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "password"}).
					AddRow(7, "alice", "alice@example.com", "pw")
				m.ExpectQuery(regexp.QuoteMeta(selectUserByCredentialsSQL)).
					WithArgs("alice", "pw").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, Username: "alice", Email: "alice@example.com", Password: "pw"},
		},
		{
			name:     "no match is not an error",
			username: "alice",
			password: "wrong",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByCredentialsSQL)).
					WithArgs("alice", "wrong").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name:     "query error",
			username: "bob",
			password: "pw",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByCredentialsSQL)).
					WithArgs("bob", "pw").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: "select user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.Authenticate(context.Background(), tt.username, tt.password)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error to contain %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil || *u != *tt.wantUser {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_List(t *testing.T) {
	t.Run("rows without password column", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "alice", "alice@example.com").
			AddRow(2, "bob", "bob@example.com")
		mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).WillReturnRows(rows)

		users, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
		if users[0].Username != "alice" || users[1].Username != "bob" {
			t.Fatalf("unexpected users: %+v", users)
		}
		if users[0].Password != "" {
			t.Fatalf("password must stay empty, got %q", users[0].Password)
		}
	})

	t.Run("empty table yields non-nil slice", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

		users, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users == nil || len(users) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", users)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUsersSQL)).
			WillReturnError(errors.New("db down"))

		if _, err := repo.List(context.Background()); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(7, "alice", "alice@example.com")
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
			WithArgs(7).
			WillReturnRows(rows)

		users, err := repo.GetByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 || users[0].ID != 7 {
			t.Fatalf("unexpected result: %+v", users)
		}
	})

	t.Run("absent id is an empty result", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

		users, err := repo.GetByID(context.Background(), 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users == nil || len(users) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", users)
		}
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
			WithArgs("carol", "carol@example.com", "pass1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Create(context.Background(), "carol", "carol@example.com", "pass1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := newMockRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
			WithArgs("carol", "carol@example.com", "pass1").
			WillReturnError(errors.New("constraint violation"))

		err := repo.Create(context.Background(), "carol", "carol@example.com", "pass1")
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "insert user") {
			t.Fatalf("expected wrapped error, got %q", err.Error())
		}
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tests := []struct {
		name         string
		id           int
		mockExpect   func(sqlmock.Sqlmock)
		wantAffected int64
		wantErr      bool
	}{
		{
			name: "row removed",
			id:   7,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantAffected: 1,
		},
		{
			name: "nothing to remove",
			id:   999,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
					WithArgs(999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantAffected: 0,
		},
		{
			name: "exec error",
			id:   7,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
					WithArgs(7).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			affected, err := repo.Delete(context.Background(), tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if affected != tt.wantAffected {
				t.Fatalf("affected: got %d, want %d", affected, tt.wantAffected)
			}
		})
	}
}
