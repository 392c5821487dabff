package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, in ports.UserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, callerID, id int64) error
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) { return s.listFn(ctx) }

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, callerID, id int64) error {
	return s.deleteFn(ctx, callerID, id)
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) { return nil, nil },
	})

	c, rec := newTestContext(http.MethodGet, "/users/", nil, "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestUserHandler_Get(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 3 {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: 3, Name: "carol", IsActive: true}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/users/3", nil, "")
	if err := h.Get(withID(c, "3")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"carol"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}

	c, _ = newTestContext(http.MethodGet, "/users/4", nil, "")
	if err := h.Get(withID(c, "4")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Get_BadID(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodGet, "/users/abc", nil, "")
	requireHTTPError(t, h.Get(withID(c, "abc")), http.StatusBadRequest)
}

func TestUserHandler_Create_ConflictIs400(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newTestContext(http.MethodPost, "/users/", strings.NewReader(aliceJSON), echo.MIMEApplicationJSON)
	he := requireHTTPError(t, h.Create(c), http.StatusBadRequest)
	if he.Message != "Email already registered" {
		t.Fatalf("unexpected message %v", he.Message)
	}
}

func TestUserHandler_Update(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
			if id != 5 || in.Password != "secret" {
				t.Fatalf("unexpected args %d %+v", id, in)
			}
			return &domain.User{ID: id, Name: in.Name, Email: in.Email, Role: in.Role, IsActive: true}, nil
		},
	})

	c, rec := newTestContext(http.MethodPut, "/users/5", strings.NewReader(aliceJSON), echo.MIMEApplicationJSON)
	if err := h.Update(withID(c, "5")); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 5 || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", resp)
	}
}

func TestUserHandler_Update_NotFoundPassesThrough(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, _ := newTestContext(http.MethodPut, "/users/9", strings.NewReader(aliceJSON), echo.MIMEApplicationJSON)
	if err := h.Update(withID(c, "9")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var gotCaller, gotID int64
	h := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, callerID, id int64) error {
			gotCaller, gotID = callerID, id
			return nil
		},
	})

	c, rec := newTestContext(http.MethodDelete, "/users/2", nil, "")
	c = withUser(withID(c, "2"), &domain.User{ID: 1, IsActive: true})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if gotCaller != 1 || gotID != 2 {
		t.Fatalf("unexpected args caller=%d id=%d", gotCaller, gotID)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] != "User deleted successfully" {
		t.Fatalf("unexpected body %+v", resp)
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, callerID, id int64) error {
			return domain.ErrSelfDelete
		},
	})

	c, _ := newTestContext(http.MethodDelete, "/users/1", nil, "")
	c = withUser(withID(c, "1"), &domain.User{ID: 1, IsActive: true})
	if err := h.Delete(c); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestUserHandler_Update_PasswordByteLimit(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	raw, _ := json.Marshal(map[string]string{
		"name": "alice", "email": "alice@example.com", "role": "user", "password": strings.Repeat("日", 30),
	})
	c, _ := newTestContext(http.MethodPut, "/users/5", strings.NewReader(string(raw)), echo.MIMEApplicationJSON)
	requireHTTPError(t, h.Update(withID(c, "5")), http.StatusUnprocessableEntity)
}
