package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/domain/booking"
)

// BookingStore exposes the booking operations the payment flow needs
type BookingStore interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// IntentResponse is returned on intent creation for the client-side
// Stripe confirmation flow
type IntentResponse struct {
	Payment      *Payment `json:"payment"`
	ClientSecret string   `json:"client_secret"`
}

// Service handles booking deposits
type Service struct {
	repo     Repository
	bookings BookingStore
	intents  IntentClient
}

// NewService creates a payment service
func NewService(repo Repository, bookings BookingStore, intents IntentClient) *Service {
	return &Service{repo: repo, bookings: bookings, intents: intents}
}

// CreateIntent creates a Stripe payment intent for a pending booking's
// deposit. One payment per booking.
func (s *Service) CreateIntent(ctx context.Context, userID uuid.UUID, bookingID string) (*IntentResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != userID {
		return nil, ErrAccessDenied
	}
	if b.Status != booking.StatusPending {
		return nil, ErrNotPayable
	}

	amount := DepositFor(b.DurationHours)

	intentID, clientSecret, err := s.intents.CreateIntent(ctx, amount, "usd", map[string]string{
		"booking_id": b.ID.String(),
		"client_id":  userID.String(),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Payment{
		ID:             uuid.New(),
		BookingID:      b.ID,
		ClientID:       userID,
		AmountCents:    amount,
		Currency:       "usd",
		StripeIntentID: intentID,
		Status:         StatusCreated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &IntentResponse{Payment: p, ClientSecret: clientSecret}, nil
}

// Confirm checks the intent with Stripe and, on success, marks the
// payment succeeded and confirms the booking.
func (s *Service) Confirm(ctx context.Context, userID uuid.UUID, paymentID string) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.ClientID != userID {
		return nil, ErrAccessDenied
	}
	if p.Status == StatusSucceeded {
		return p, nil
	}

	status, err := s.intents.IntentStatus(ctx, p.StripeIntentID)
	if err != nil {
		return nil, err
	}
	if status != "succeeded" {
		return nil, ErrNotSucceeded
	}

	if err := s.repo.UpdateStatus(ctx, paymentID, StatusSucceeded); err != nil {
		return nil, err
	}
	p.Status = StatusSucceeded
	p.UpdatedAt = time.Now().UTC()

	// The deposit confirms the booking. A booking no longer pending is
	// left alone; the payment record is still marked.
	b, err := s.bookings.GetByID(ctx, p.BookingID.String())
	if err == nil && b.Status == booking.StatusPending {
		if err := s.bookings.UpdateStatus(ctx, b.ID.String(), booking.StatusConfirmed); err != nil {
			log.Error().Err(err).Str("booking_id", b.ID.String()).Msg("Failed to confirm booking after payment")
		}
	}

	return p, nil
}

// GetByBooking returns the payment attached to a booking
func (s *Service) GetByBooking(ctx context.Context, userID uuid.UUID, role, bookingID string) (*Payment, error) {
	p, err := s.repo.GetByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if role != "admin" && p.ClientID != userID {
		return nil, ErrAccessDenied
	}
	return p, nil
}
