package gallery

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
)

const maxUploadSize = 20 << 20 // 20 MiB

// Handler handles gallery HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a gallery handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /gallery (multipart form: file, title, category)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form or file too large")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Form field 'file' is required")
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	category := r.FormValue("category")

	p, err := h.service.Upload(r.Context(), userID, title, category, file)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, p)
}

// ListByPhotographer handles GET /gallery/photographer/{id}
func (h *Handler) ListByPhotographer(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListByPhotographer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.OK(w, grouped)
}

// Delete handles DELETE /gallery/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID, role); err != nil {
		h.handleError(w, err)
		return
	}
	response.NoContent(w)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Photo not found")
	case errors.Is(err, ErrInvalidImage):
		response.BadRequest(w, "File is not a supported image")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "You can only manage your own gallery")
	default:
		response.InternalError(w)
	}
}
