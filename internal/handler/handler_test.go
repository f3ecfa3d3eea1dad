package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
	"github.com/novalith/novalith-backend/internal/handler"
	"github.com/novalith/novalith-backend/internal/repository/sqlite"
	"github.com/novalith/novalith-backend/internal/service"
)

const testSecret = "test-secret-at-least-32-characters-long"

// fixedClock pins the attendance service's notion of now.
type fixedClock struct {
	current time.Time
}

func (c *fixedClock) Now() time.Time          { return c.current }
func (c *fixedClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

// testServer bundles a running HTTP server with the storage and clock
// behind it so tests can both call the API and inspect state.
type testServer struct {
	*httptest.Server
	db    *sqlite.DB
	auth  *service.AuthService
	clock *fixedClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	// Large burst so only the rate limit tests exhaust it.
	return newTestServerWithLimiter(t, 1000, 1000)
}

func newTestServerWithLimiter(t *testing.T, rate, burst float64) *testServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clock := &fixedClock{current: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

	auth := service.NewAuthService(db.Users(), testSecret, time.Hour, 4)
	attendance := service.NewAttendanceService(db.Attendance(), db.Users(), clock.Now)
	blog := service.NewBlogService(db.Posts())
	team := service.NewTeamService(db.Team())
	users := service.NewUserService(db.Users())
	limiter := service.NewRateLimiter(rate, burst, nil)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, attendance, blog, team, users, limiter, false)

	srv := httptest.NewServer(handler.RequestID(handler.SecurityHeaders(mux)))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, db: db, auth: auth, clock: clock}
}

// apiResponse mirrors the response envelope for decoding in tests.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

// do issues a request with an optional JSON body and bearer token,
// returning the status code and decoded envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response for %s %s: %v", method, path, err)
	}
	return resp.StatusCode, env
}

// registerAndLogin creates an account through the API and returns its
// user and a bearer token.
func (ts *testServer) registerAndLogin(t *testing.T, name, email string) (*domain.User, string) {
	t.Helper()
	ctx := context.Background()

	status, env := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":            name,
		"email":           email,
		"password":        "password1",
		"confirmPassword": "password1",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d, message %q", email, status, env.Message)
	}

	user, token, err := ts.auth.Login(ctx, email, "password1")
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return user, token
}

// promoteToAdmin flips a user's role directly in storage.
func (ts *testServer) promoteToAdmin(t *testing.T, user *domain.User) {
	t.Helper()
	user.Role = domain.RoleAdmin
	if err := ts.db.Users().Update(context.Background(), user); err != nil {
		t.Fatalf("promote %s: %v", user.Email, err)
	}
}
