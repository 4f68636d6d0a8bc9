package dashboard

import (
	"context"
)

// StatusCounter reports bookings grouped by status
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// RoleCounter reports users grouped by role
type RoleCounter interface {
	CountByRole(ctx context.Context) (map[string]int, error)
}

// SentimentCounter reports records grouped by sentiment label
type SentimentCounter interface {
	CountBySentiment(ctx context.Context) (map[string]int, error)
}

// Stats is the admin dashboard snapshot
type Stats struct {
	BookingsByStatus  map[string]int `json:"bookings_by_status"`
	UsersByRole       map[string]int `json:"users_by_role"`
	ReviewSentiment   map[string]int `json:"review_sentiment"`
	FeedbackSentiment map[string]int `json:"feedback_sentiment"`
}

// Service aggregates platform stats for admins
type Service struct {
	bookings StatusCounter
	users    RoleCounter
	reviews  SentimentCounter
	feedback SentimentCounter
}

// NewService creates a dashboard service
func NewService(bookings StatusCounter, users RoleCounter, reviews, feedback SentimentCounter) *Service {
	return &Service{bookings: bookings, users: users, reviews: reviews, feedback: feedback}
}

// Stats collects counts across the platform
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	reviewSentiment, err := s.reviews.CountBySentiment(ctx)
	if err != nil {
		return nil, err
	}
	feedbackSentiment, err := s.feedback.CountBySentiment(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		BookingsByStatus:  byStatus,
		UsersByRole:       byRole,
		ReviewSentiment:   reviewSentiment,
		FeedbackSentiment: feedbackSentiment,
	}, nil
}
