package payment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/domain/booking"
	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/validator"
)

// CreateIntentRequest is the payload for creating a deposit intent
type CreateIntentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

// Handler handles payment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateIntent handles POST /payments/intent
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateIntentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	result, err := h.service.CreateIntent(r.Context(), userID, req.BookingID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, result)
}

// Confirm handles POST /payments/{id}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	p, err := h.service.Confirm(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, p)
}

// GetByBooking handles GET /payments/booking/{id}
func (h *Handler) GetByBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	p, err := h.service.GetByBooking(r.Context(), userID, role, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.OK(w, p)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Payment not found")
	case errors.Is(err, booking.ErrNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrAccessDenied):
		response.Forbidden(w, "You can only manage payments for your own bookings")
	case errors.Is(err, ErrNotPayable):
		response.Error(w, http.StatusUnprocessableEntity, "NOT_PAYABLE", "Only pending bookings can be paid")
	case errors.Is(err, ErrAlreadyPaid):
		response.Conflict(w, "This booking already has a payment")
	case errors.Is(err, ErrNotSucceeded):
		response.Error(w, http.StatusUnprocessableEntity, "NOT_SUCCEEDED", "Payment has not succeeded yet")
	default:
		response.InternalError(w)
	}
}
