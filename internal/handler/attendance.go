package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
	"github.com/novalith/novalith-backend/internal/service"
)

// AttendanceHandler handles attendance HTTP requests.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// HandlePunchIn records the start of the caller's working day.
// POST /api/attendance/punch-in
func (h *AttendanceHandler) HandlePunchIn(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	rec, err := h.attendance.PunchIn(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPunchedIn) {
			writeError(w, http.StatusConflict, "Already punched in today.")
			return
		}
		slog.Error("punch in", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeData(w, http.StatusOK, toAttendanceDTO(rec))
}

// HandlePunchOut records the end of the caller's working day.
// POST /api/attendance/punch-out
func (h *AttendanceHandler) HandlePunchOut(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	rec, err := h.attendance.PunchOut(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotPunchedIn):
			writeError(w, http.StatusConflict, "Not punched in yet.")
		case errors.Is(err, domain.ErrAlreadyPunchedOut):
			writeError(w, http.StatusConflict, "Already punched out today.")
		default:
			slog.Error("punch out", "error", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeData(w, http.StatusOK, toAttendanceDTO(rec))
}

// HandleMine returns the caller's records for a month, defaulting to the
// current one.
// GET /api/attendance/me?month=&year=
func (h *AttendanceHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	month, ok := intQuery(w, r, "month")
	if !ok {
		return
	}
	year, ok := intQuery(w, r, "year")
	if !ok {
		return
	}

	records, err := h.attendance.MyAttendance(r.Context(), user.ID, time.Month(month), year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("list my attendance", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeList(w, http.StatusOK, toAttendanceDTOs(records), len(records))
}

// HandleAll returns every record across all users with owner identities.
// Admin only.
// GET /api/attendance
func (h *AttendanceHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendance.AllAttendance(r.Context())
	if err != nil {
		slog.Error("list all attendance", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeList(w, http.StatusOK, toAttendanceWithUserDTOs(entries), len(entries))
}

// intQuery parses an optional integer query parameter, writing a 400 on
// malformed input. Absent parameters yield zero.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name+" parameter.")
		return 0, false
	}
	return v, true
}
