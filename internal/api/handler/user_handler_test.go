package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

func TestUserHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.User{ID: "u1", Username: "alice", Role: &domain.Role{Name: domain.RoleUser}}, nil
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodGet, "/auth/user/u1", "", h.Get, map[string]string{"id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never serialize")
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodGet, "/auth/user/missing", "", h.Get, map[string]string{"id": "missing"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		listUsersFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodGet, "/auth/users", "", h.List, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	stub := &stubAccountService{
		deleteUserFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodDelete, "/auth/user/u1", "", h.Delete, map[string]string{"id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "u1" {
		t.Fatalf("expected delete of u1, got %q", deleted)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		deleteUserFn: func(ctx context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodDelete, "/auth/user/x", "", h.Delete, map[string]string{"id": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_GetRoles(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		getUserRoleFn: func(ctx context.Context, userID string) (*domain.Role, error) {
			return &domain.Role{ID: "r1", Name: domain.RoleAdmin}, nil
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodGet, "/auth/user/u1/roles", "", h.GetRoles, map[string]string{"id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var role map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &role); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if role["name"] != domain.RoleAdmin {
		t.Fatalf("unexpected role payload: %+v", role)
	}
}

func TestUserHandler_AssignRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		assignRoleFn: func(ctx context.Context, userID, roleID string) error {
			if userID != "u1" || roleID != "r2" {
				t.Fatalf("unexpected args %s %s", userID, roleID)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodPost, "/auth/user/u1/roles", `{"role_id":"r2"}`, h.AssignRole, map[string]string{"id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_AssignRole_MissingRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAccountService{
		assignRoleFn: func(ctx context.Context, userID, roleID string) error {
			return domain.ErrRoleNotFound
		},
	}
	h := NewUserHandler(stub)

	rec := doJSON(t, e, http.MethodPost, "/auth/user/u1/roles", `{"role_id":"rX"}`, h.AssignRole, map[string]string{"id": "u1"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
