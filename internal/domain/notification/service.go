package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/domain/booking"
	"github.com/capturemoments/capture-api/internal/domain/user"
	"github.com/capturemoments/capture-api/internal/pkg/email"
)

// Service persists notifications and pushes them over the realtime hub
// and email. It implements the booking domain's Notifier.
type Service struct {
	repo  Repository
	hub   *Hub
	users user.Repository
	email email.Sender
}

// NewService creates a notification service. hub and email may be nil.
func NewService(repo Repository, hub *Hub, users user.Repository, sender email.Sender) *Service {
	return &Service{repo: repo, hub: hub, users: users, email: sender}
}

// BookingCreated notifies the photographer about a new request
func (s *Service) BookingCreated(ctx context.Context, b *booking.Booking) error {
	title := "New booking request"
	message := fmt.Sprintf("You have a new %s booking request on %s at %02d:00 (%d hours).",
		eventLabel(b.EventType), b.EventDate.Format("2006-01-02"), b.StartHour, b.DurationHours)

	return s.deliver(ctx, b.PhotographerID, TypeBookingCreated, title, message)
}

// BookingStatusChanged notifies the counterparty about a status change
func (s *Service) BookingStatusChanged(ctx context.Context, b *booking.Booking, previous string) error {
	var notifType, title, message string
	recipient := b.ClientID

	switch b.Status {
	case booking.StatusConfirmed:
		notifType = TypeBookingConfirmed
		title = "Booking confirmed"
		message = fmt.Sprintf("Your booking on %s at %02d:00 has been confirmed.",
			b.EventDate.Format("2006-01-02"), b.StartHour)
	case booking.StatusCompleted:
		notifType = TypeBookingCompleted
		title = "Booking completed"
		message = "Your booking has been completed. You can now leave a review."
	case booking.StatusCancelled:
		notifType = TypeBookingCancelled
		title = "Booking cancelled"
		message = fmt.Sprintf("The booking on %s at %02d:00 was cancelled (was %s).",
			b.EventDate.Format("2006-01-02"), b.StartHour, previous)
		// Cancellations concern both sides; tell the photographer too.
		if err := s.deliver(ctx, b.PhotographerID, notifType, title, message); err != nil {
			log.Error().Err(err).Msg("Failed to notify photographer of cancellation")
		}
	default:
		return nil
	}

	return s.deliver(ctx, recipient, notifType, title, message)
}

func (s *Service) deliver(ctx context.Context, userID uuid.UUID, notifType, title, message string) error {
	n := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		if err := s.hub.SendToUser(userID, n); err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("Realtime notification delivery failed")
		}
	}

	if s.email != nil && s.users != nil {
		u, err := s.users.GetByID(ctx, userID.String())
		if err == nil {
			body := fmt.Sprintf("<p>Hi %s,</p><p>%s</p>", u.FullName, message)
			if err := s.email.Send(ctx, u.Email, title, body); err != nil {
				log.Warn().Err(err).Str("user_id", userID.String()).Msg("Notification email failed")
			}
		}
	}

	return nil
}

// ListByUser returns a user's notifications
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Notification, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID.String(), limit, offset)
}

// CountUnread returns the user's unread notification count
func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID.String())
}

// MarkRead marks one notification read
func (s *Service) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID.String())
}

// MarkAllRead marks all of the user's notifications read
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID.String())
}

func eventLabel(eventType string) string {
	if eventType == "" {
		return "photography"
	}
	return eventType
}
