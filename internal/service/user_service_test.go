package service

import (
	"context"
	"errors"
	"testing"

	"users_api/internal/models"
)

func TestUserService_Delete(t *testing.T) {
	t.Run("zero affected rows maps to ErrUserNotFound", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) (int64, error) { return 0, nil },
		}
		svc := NewUserService(mock)

		err := svc.Delete(context.Background(), 999)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("repeated delete of an absent id stays not-found", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) (int64, error) { return 0, nil },
		}
		svc := NewUserService(mock)

		for i := 0; i < 2; i++ {
			if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrUserNotFound) {
				t.Fatalf("attempt %d: expected ErrUserNotFound, got %v", i+1, err)
			}
		}
		if len(mock.deleteCalls) != 2 {
			t.Fatalf("expected 2 Delete calls, got %d", len(mock.deleteCalls))
		}
	})

	t.Run("affected row means success", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) (int64, error) { return 1, nil },
		}
		svc := NewUserService(mock)

		if err := svc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mock.deleteCalls) != 1 || mock.deleteCalls[0] != 7 {
			t.Fatalf("unexpected Delete calls: %v", mock.deleteCalls)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) (int64, error) { return 0, errors.New("db down") },
		}
		svc := NewUserService(mock)

		err := svc.Delete(context.Background(), 7)
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
		if errors.Is(err, ErrUserNotFound) {
			t.Fatalf("store failure must not look like not-found: %v", err)
		}
	})
}

func TestUserService_Passthroughs(t *testing.T) {
	want := []models.User{{ID: 1, Username: "alice", Email: "a@example.com"}}

	mock := &mockUserRepo{
		ListFn:    func() ([]models.User, error) { return want, nil },
		GetByIDFn: func(id int) ([]models.User, error) { return want, nil },
		CreateFn: func(username, email, password string) error {
			if username != "carol" || email != "c@example.com" || password != "pass1" {
				t.Fatalf("create args: (%q, %q, %q)", username, email, password)
			}
			return nil
		},
	}
	svc := NewUserService(mock)
	ctx := context.Background()

	got, err := svc.List(ctx)
	if err != nil || len(got) != 1 || got[0].Username != "alice" {
		t.Fatalf("List: got %v, err %v", got, err)
	}

	got, err = svc.GetByID(ctx, 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByID: got %v, err %v", got, err)
	}

	if err := svc.Create(ctx, "carol", "c@example.com", "pass1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
}
