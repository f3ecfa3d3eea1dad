package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestUsers_AdminOnly(t *testing.T) {
	ts := newTestServer(t)
	_, empToken := ts.registerAndLogin(t, "Ada", "ada@example.com")

	if status, _ := ts.do(t, http.MethodGet, "/api/users", empToken, nil); status != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", status)
	}
	if status, _ := ts.do(t, http.MethodGet, "/api/users", "", nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}

func TestUsers_ListAndGet(t *testing.T) {
	ts := newTestServer(t)
	employee, _ := ts.registerAndLogin(t, "Ada", "ada@example.com")
	admin, token := ts.registerAndLogin(t, "Root", "root@example.com")
	ts.promoteToAdmin(t, admin)

	status, env := ts.do(t, http.MethodGet, "/api/users", token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected count 2, got %v", env.Count)
	}

	status, env = ts.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", employee.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	var user struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	if status, _ := ts.do(t, http.MethodGet, "/api/users/9999", token, nil); status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing user, got %d", status)
	}
}

func TestUsers_UpdateRole(t *testing.T) {
	ts := newTestServer(t)
	employee, _ := ts.registerAndLogin(t, "Ada", "ada@example.com")
	admin, token := ts.registerAndLogin(t, "Root", "root@example.com")
	ts.promoteToAdmin(t, admin)

	status, env := ts.do(t, http.MethodPut, fmt.Sprintf("/api/users/%d", employee.ID), token, map[string]string{
		"name": "Ada L.",
		"role": "admin",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	var updated struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if updated.Name != "Ada L." || updated.Role != "admin" {
		t.Fatalf("unexpected user %+v", updated)
	}

	status, _ = ts.do(t, http.MethodPut, fmt.Sprintf("/api/users/%d", employee.ID), token, map[string]string{
		"name": "Ada",
		"role": "superuser",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown role, got %d", status)
	}
}

func TestUsers_DeleteSelfRejected(t *testing.T) {
	ts := newTestServer(t)
	employee, _ := ts.registerAndLogin(t, "Ada", "ada@example.com")
	admin, token := ts.registerAndLogin(t, "Root", "root@example.com")
	ts.promoteToAdmin(t, admin)

	status, _ := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", admin.ID), token, nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for self-delete, got %d", status)
	}

	status, _ = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", employee.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if status, _ := ts.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", employee.ID), token, nil); status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}
