package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAuth_RegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	status, env := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "password1",
		"confirmPassword": "different",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for mismatched passwords, got %d", status)
	}
	if env.Success {
		t.Fatal("expected success=false")
	}
}

func TestAuth_RegisterMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/auth/register", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("POST register: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.StatusCode)
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "Ada", "ada@example.com")

	status, _ := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":            "Other Ada",
		"email":           "ada@example.com",
		"password":        "password1",
		"confirmPassword": "password1",
	})
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", status)
	}
}

func TestAuth_LoginSetsCookieAndReturnsToken(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "Ada", "ada@example.com")

	body, _ := json.Marshal(map[string]string{"email": "ada@example.com", "password": "password1"})
	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected auth_token cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatal("expected auth_token cookie to be HttpOnly")
	}

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	var payload struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected a token in the body")
	}
	if payload.User.Email != "ada@example.com" {
		t.Fatalf("expected user in body, got %q", payload.User.Email)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "Ada", "ada@example.com")

	status, env := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if env.Message != "Invalid email or password." {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestAuth_MeReturnsCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	user, token := ts.registerAndLogin(t, "Ada", "ada@example.com")

	status, env := ts.do(t, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}

	var me struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if me.ID != user.ID || me.Email != "ada@example.com" || me.Role != "employee" {
		t.Fatalf("unexpected me payload %+v", me)
	}
}

func TestAuth_LogoutClearsCookie(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.registerAndLogin(t, "Ada", "ada@example.com")

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/auth/logout", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST logout: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.MaxAge >= 0 {
			t.Fatalf("expected auth_token cookie to be expired, got MaxAge %d", c.MaxAge)
		}
	}
}
