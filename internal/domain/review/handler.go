package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/domain/booking"
	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/validator"
)

// Handler handles review HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a review handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /reviews
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	rv, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, rv)
}

// ListByPhotographer handles GET /reviews/photographer/{id}
func (h *Handler) ListByPhotographer(w http.ResponseWriter, r *http.Request) {
	photographerID := chi.URLParam(r, "id")

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

	reviews, total, err := h.service.ListByPhotographer(r.Context(), photographerID, limit, (page-1)*limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, reviews, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}

// Summary handles GET /reviews/photographer/{id}/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	response.OK(w, summary)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Review not found")
	case errors.Is(err, booking.ErrNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrAlreadyReviewed):
		response.Conflict(w, "This booking has already been reviewed")
	case errors.Is(err, ErrBookingNotEligible):
		response.Error(w, http.StatusUnprocessableEntity, "NOT_ELIGIBLE", "Only completed bookings can be reviewed")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "You can only review your own bookings")
	default:
		response.InternalError(w)
	}
}
