package feedback

import (
	"net/http"
	"strconv"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/validator"
)

// Handler handles feedback HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a feedback handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /feedback
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	f, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, f)
}

// List handles GET /feedback (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := 1, 20
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	items, total, err := h.service.List(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}
