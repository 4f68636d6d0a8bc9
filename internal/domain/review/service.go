package review

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/domain/booking"
	"github.com/capturemoments/capture-api/internal/pkg/sentiment"
)

// BookingReader exposes the booking lookup the review flow needs
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

// RatingUpdater receives the photographer's recalculated aggregate
type RatingUpdater interface {
	UpdateRating(ctx context.Context, photographerID string, rating float64, reviewCount int) error
}

// Service handles review submission and aggregation
type Service struct {
	repo     Repository
	bookings BookingReader
	ratings  RatingUpdater
}

// NewService creates a review service. ratings may be nil.
func NewService(repo Repository, bookings BookingReader, ratings RatingUpdater) *Service {
	return &Service{repo: repo, bookings: bookings, ratings: ratings}
}

// Create submits a review for a completed booking. The overall rating
// and the comment's sentiment are computed here, not taken from input.
func (s *Service) Create(ctx context.Context, clientID uuid.UUID, req CreateRequest) (*Review, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrAccessDenied
	}
	if b.Status != booking.StatusCompleted {
		return nil, ErrBookingNotEligible
	}

	mood := sentiment.Analyze(req.Comment)

	rv := &Review{
		ID:             uuid.New(),
		BookingID:      b.ID,
		ClientID:       clientID,
		PhotographerID: b.PhotographerID,
		Rating:         req.Rating,
		ServiceQuality: req.ServiceQuality,
		Communication:  req.Communication,
		ValueForMoney:  req.ValueForMoney,
		Overall:        OverallOf(req.Rating, req.ServiceQuality, req.Communication, req.ValueForMoney),
		Comment:        req.Comment,
		Sentiment:      mood.Label,
		Polarity:       mood.Polarity,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	if s.ratings != nil {
		go s.refreshRating(rv.PhotographerID.String())
	}

	return rv, nil
}

// refreshRating recomputes and stores the photographer's aggregate.
// Best effort; a failed refresh is corrected by the next review.
func (s *Service) refreshRating(photographerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := s.repo.Summarize(ctx, photographerID)
	if err != nil {
		log.Error().Err(err).Str("photographer_id", photographerID).Msg("Failed to summarize reviews")
		return
	}

	rating := math.Round(summary.AverageOverall*100) / 100
	if err := s.ratings.UpdateRating(ctx, photographerID, rating, summary.ReviewCount); err != nil {
		log.Error().Err(err).Str("photographer_id", photographerID).Msg("Failed to update photographer rating")
	}
}

// ListByPhotographer returns a photographer's reviews
func (s *Service) ListByPhotographer(ctx context.Context, photographerID string, limit, offset int) ([]Review, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByPhotographer(ctx, photographerID, limit, offset)
}

// Summarize returns the aggregate review summary for a photographer
func (s *Service) Summarize(ctx context.Context, photographerID string) (*Summary, error) {
	return s.repo.Summarize(ctx, photographerID)
}
