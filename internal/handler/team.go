package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/novalith/novalith-backend/internal/domain"
	"github.com/novalith/novalith-backend/internal/service"
)

// TeamHandler handles team member HTTP requests.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

type teamMemberRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photoUrl"`
	SortOrder int    `json:"sortOrder"`
}

// HandleList returns all team members for the public team page.
// GET /api/team
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		slog.Error("list team members", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeList(w, http.StatusOK, toTeamMemberDTOs(members), len(members))
}

// HandleGet returns a single team member.
// GET /api/team/{id}
func (h *TeamHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	member, err := h.team.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team member not found.")
			return
		}
		slog.Error("get team member", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeData(w, http.StatusOK, toTeamMemberDTO(member))
}

// HandleCreate adds a team member profile. Admin only.
// POST /api/team
func (h *TeamHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	member := &domain.TeamMember{
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
	}
	if err := h.team.Create(r.Context(), member); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create team member", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeData(w, http.StatusCreated, toTeamMemberDTO(member))
}

// HandleUpdate replaces a team member profile. Admin only.
// PUT /api/team/{id}
func (h *TeamHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req teamMemberRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	member := &domain.TeamMember{
		ID:        id,
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
	}
	if err := h.team.Update(r.Context(), member); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Team member not found.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("update team member", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}
	writeData(w, http.StatusOK, toTeamMemberDTO(member))
}

// HandleDelete removes a team member profile. Admin only.
// DELETE /api/team/{id}
func (h *TeamHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.team.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team member not found.")
			return
		}
		slog.Error("delete team member", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeMessage(w, http.StatusOK, "Team member deleted.")
}
