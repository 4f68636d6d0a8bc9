package photographer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/validator"
)

// Handler handles photographer HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a photographer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /photographers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateProfileRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	p, err := h.service.CreateProfile(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, p)
}

// Update handles PUT /photographers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	var req UpdateProfileRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "id"), userID, role, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, p)
}

// Get handles GET /photographers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.OK(w, p)
}

// GetMine handles GET /photographers/me
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	p, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.OK(w, p)
}

// List handles GET /photographers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if p := q.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	limit := 20
	if l := q.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	filter := ListFilter{
		Specialization: q.Get("specialization"),
		Location:       q.Get("location"),
		Limit:          limit,
		Offset:         (page - 1) * limit,
	}

	profiles, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, profiles, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}

// Recommend handles GET /photographers/recommendations
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if l := q.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	recs, err := h.service.Recommend(r.Context(), Preferences{
		Specialization: q.Get("specialization"),
		Location:       q.Get("location"),
		Limit:          limit,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, recs)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Photographer profile not found")
	case errors.Is(err, ErrProfileExists):
		response.Conflict(w, "Photographer profile already exists")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "You can only modify your own profile")
	default:
		response.InternalError(w)
	}
}
