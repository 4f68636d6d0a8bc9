package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSlots handles GET /photographers/{id}/slots
func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	photographerID := chi.URLParam(r, "id")
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.BadRequest(w, "Query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	duration := 1
	if d := r.URL.Query().Get("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Query parameter 'duration' must be a positive integer")
			return
		}
		duration = parsed
	}

	slots, err := h.service.GetSlots(r.Context(), photographerID, dateStr, duration)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, slots)
}

// Create handles POST /bookings
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

	b, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, ToResponse(b))
}

// ListMy handles GET /bookings/my
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	page, limit := pagination(r)

	bookings, total, err := h.service.ListMine(r.Context(), userID, role, limit, (page-1)*limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	items := make([]Response, 0, len(bookings))
	for i := range bookings {
		items = append(items, ToResponse(&bookings[i]))
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

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	b, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"), userID, role)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, ToResponse(b))
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	var req UpdateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	b, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), userID, role, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, ToResponse(b))
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		ranges := conflict.Conflicts
		if ranges == nil {
			ranges = []SlotRange{}
		}
		response.ConflictWithData(w, "Requested time is no longer available", map[string]interface{}{
			"conflicts": ranges,
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrPhotographerNotFound):
		response.NotFound(w, "Photographer not found")
	case errors.Is(err, ErrInvalidDate):
		response.BadRequest(w, "Invalid event date, expected YYYY-MM-DD")
	case errors.Is(err, ErrPastDate):
		response.BadRequest(w, "Event date is in the past")
	case errors.Is(err, ErrInvalidStartHour):
		response.BadRequest(w, "Start hour must be between 0 and 23")
	case errors.Is(err, ErrInvalidDuration):
		response.BadRequest(w, "Duration must be between 1 and 12 hours and end within the day")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(w, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Status change is not allowed from the current status")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "You do not have access to this booking")
	default:
		response.InternalError(w)
	}
}

func pagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20
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
	return page, limit
}
