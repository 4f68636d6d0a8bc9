package pricing

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/pkg/response"
)

// RatingSource resolves a photographer's aggregated review rating
type RatingSource interface {
	RatingByUserID(ctx context.Context, userID string) (float64, int, error)
}

// Handler handles pricing HTTP requests
type Handler struct {
	service *Service
	ratings RatingSource
}

// NewHandler creates a pricing handler. ratings may be nil.
func NewHandler(service *Service, ratings RatingSource) *Handler {
	return &Handler{service: service, ratings: ratings}
}

// GetQuote handles GET /pricing/quote
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	eventType := q.Get("event_type")
	if eventType == "" {
		eventType = "portrait"
	}
	location := q.Get("location")
	dateStr := q.Get("date")
	if dateStr == "" {
		response.BadRequest(w, "Query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	duration := 2.0
	if d := q.Get("duration"); d != "" {
		parsed, err := strconv.ParseFloat(d, 64)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "Query parameter 'duration' must be a positive number")
			return
		}
		duration = parsed
	}

	rating := 4.0
	if v := q.Get("rating"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 5 {
			response.BadRequest(w, "Query parameter 'rating' must be between 0 and 5")
			return
		}
		rating = parsed
	} else if id := q.Get("photographer_id"); id != "" && h.ratings != nil {
		// Unreviewed photographers keep the 4.0 default.
		aggregated, reviews, err := h.ratings.RatingByUserID(r.Context(), id)
		if err != nil {
			log.Warn().Err(err).Str("photographer_id", id).Msg("Rating lookup failed, using default")
		} else if reviews > 0 {
			rating = aggregated
		}
	}

	response.OK(w, h.service.Quote(r.Context(), eventType, location, dateStr, duration, rating))
}
