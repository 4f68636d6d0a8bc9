package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/pkg/alert"
	"github.com/capturemoments/capture-api/internal/pkg/sentiment"
)

// Service handles feedback submission and review
type Service struct {
	repo   Repository
	alerts alert.Publisher
}

// NewService creates a feedback service
func NewService(repo Repository, alerts alert.Publisher) *Service {
	return &Service{repo: repo, alerts: alerts}
}

// Submit stores feedback with its sentiment score. Negative feedback
// raises an operational alert so support can follow up; the alert is
// best effort and never fails the submission.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Feedback, error) {
	mood := sentiment.Analyze(req.Subject + " " + req.Message)

	f := &Feedback{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   req.Subject,
		Message:   req.Message,
		Sentiment: mood.Label,
		Polarity:  mood.Polarity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	if f.Sentiment == sentiment.LabelNegative {
		go func(fb Feedback) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			message := fmt.Sprintf("Negative feedback received (polarity %.2f)\nSubject: %s\nMessage: %s",
				fb.Polarity, fb.Subject, fb.Message)
			err := s.alerts.Publish(ctx, "Negative feedback alert", message, map[string]string{
				"feedback_id": fb.ID.String(),
				"sentiment":   fb.Sentiment,
			})
			if err != nil {
				log.Error().Err(err).Str("feedback_id", fb.ID.String()).Msg("Failed to publish feedback alert")
			}
		}(*f)
	}

	return f, nil
}

// List returns feedback entries, newest first
func (s *Service) List(ctx context.Context, limit, offset int) ([]Feedback, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit, offset)
}
