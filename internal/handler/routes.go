package handler

import (
	"net/http"

	"github.com/novalith/novalith-backend/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	attendance *service.AttendanceService,
	blog *service.BlogService,
	team *service.TeamService,
	users *service.UserService,
	limiter *service.RateLimiter,
	cookieSecure bool,
) {
	authH := NewAuthHandler(auth, cookieSecure)
	attendanceH := NewAttendanceHandler(attendance)
	blogH := NewBlogHandler(blog)
	teamH := NewTeamHandler(team)
	usersH := NewUserHandler(users)

	authed := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, RequireAdmin(h))
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimit(limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /api/auth/register", limited(authH.HandleRegister))
	mux.Handle("POST /api/auth/login", limited(authH.HandleLogin))
	mux.Handle("POST /api/auth/logout", authed(authH.HandleLogout))
	mux.Handle("GET /api/auth/me", authed(authH.HandleMe))

	mux.Handle("POST /api/attendance/punch-in", authed(attendanceH.HandlePunchIn))
	mux.Handle("POST /api/attendance/punch-out", authed(attendanceH.HandlePunchOut))
	mux.Handle("GET /api/attendance/me", authed(attendanceH.HandleMine))
	mux.Handle("GET /api/attendance", admin(attendanceH.HandleAll))

	mux.HandleFunc("GET /api/posts", blogH.HandleList)
	mux.Handle("GET /api/posts/all", admin(blogH.HandleListAll))
	mux.HandleFunc("GET /api/posts/{id}", blogH.HandleGet)
	mux.Handle("POST /api/posts", authed(blogH.HandleCreate))
	mux.Handle("PUT /api/posts/{id}", authed(blogH.HandleUpdate))
	mux.Handle("DELETE /api/posts/{id}", authed(blogH.HandleDelete))

	mux.HandleFunc("GET /api/team", teamH.HandleList)
	mux.HandleFunc("GET /api/team/{id}", teamH.HandleGet)
	mux.Handle("POST /api/team", admin(teamH.HandleCreate))
	mux.Handle("PUT /api/team/{id}", admin(teamH.HandleUpdate))
	mux.Handle("DELETE /api/team/{id}", admin(teamH.HandleDelete))

	mux.Handle("GET /api/users", admin(usersH.HandleList))
	mux.Handle("GET /api/users/{id}", admin(usersH.HandleGet))
	mux.Handle("PUT /api/users/{id}", admin(usersH.HandleUpdate))
	mux.Handle("DELETE /api/users/{id}", admin(usersH.HandleDelete))
}
