package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/novalith/novalith-backend/internal/domain"
	"github.com/novalith/novalith-backend/internal/service"
)

// BlogHandler handles blog post HTTP requests.
type BlogHandler struct {
	blog *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog *service.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

type blogPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// HandleList returns published posts for the public site.
// GET /api/posts
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPublished(r.Context())
	if err != nil {
		slog.Error("list published posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeList(w, http.StatusOK, toBlogPostDTOs(posts), len(posts))
}

// HandleListAll returns every post including drafts. Admin only.
// GET /api/posts/all
func (h *BlogHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListAll(r.Context())
	if err != nil {
		slog.Error("list all posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeList(w, http.StatusOK, toBlogPostDTOs(posts), len(posts))
}

// HandleGet returns a single post.
// GET /api/posts/{id}
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.blog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeData(w, http.StatusOK, toBlogPostDTO(post))
}

// HandleCreate stores a new post authored by the caller.
// POST /api/posts
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req blogPostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.blog.Create(r.Context(), user, req.Title, req.Content, req.Tags, req.Published)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeData(w, http.StatusCreated, toBlogPostDTO(post))
}

// HandleUpdate replaces a post. Author or admin only.
// PUT /api/posts/{id}
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req blogPostRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.blog.Update(r.Context(), user, id, req.Title, req.Content, req.Tags, req.Published)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Only the author or an admin may modify this post.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("update post", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}
	writeData(w, http.StatusOK, toBlogPostDTO(post))
}

// HandleDelete removes a post. Author or admin only.
// DELETE /api/posts/{id}
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.blog.Delete(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "Only the author or an admin may delete this post.")
		default:
			slog.Error("delete post", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}
	writeMessage(w, http.StatusOK, "Post deleted.")
}

// pathID parses the {id} path segment, writing a 400 on malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}
