package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Notifier delivers booking lifecycle events to interested parties
type Notifier interface {
	BookingCreated(ctx context.Context, b *Booking) error
	BookingStatusChanged(ctx context.Context, b *Booking, previous string) error
}

// Service orchestrates booking creation, availability and status changes
type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

// NewService creates a booking service. notifier may be nil.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

// Submit creates a pending booking for the requested range. The
// pre-check gives fast feedback with the conflicting ranges; the
// conditional insert is what actually guarantees no double booking.
// A lost race is retried once after re-reading the day.
func (s *Service) Submit(ctx context.Context, clientID uuid.UUID, req CreateRequest) (*Booking, error) {
	photographerID, err := uuid.Parse(req.PhotographerID)
	if err != nil {
		return nil, ErrPhotographerNotFound
	}

	date, err := time.Parse(time.DateOnly, req.EventDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if req.StartHour < 0 || req.StartHour > 23 {
		return nil, ErrInvalidStartHour
	}

	// Platform default when the client leaves duration out.
	duration := 2
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}
	if duration < 1 || duration > 12 || req.StartHour+duration > 24 {
		return nil, ErrInvalidDuration
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	existing, err := s.repo.ListForDate(ctx, photographerID.String(), date)
	if err != nil {
		return nil, err
	}
	if conflicts := conflictsWith(existing, req.StartHour, req.StartHour+duration); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	now := s.now().UTC()
	b := &Booking{
		ID:             uuid.New(),
		ClientID:       clientID,
		PhotographerID: photographerID,
		EventDate:      date,
		StartHour:      req.StartHour,
		DurationHours:  duration,
		EventType:      req.EventType,
		Location:       req.Location,
		Notes:          req.Notes,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.insertWithRetry(ctx, b); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(created Booking) {
			if err := s.notifier.BookingCreated(context.Background(), &created); err != nil {
				log.Error().Err(err).Str("booking_id", created.ID.String()).Msg("Failed to send booking notification")
			}
		}(*b)
	}

	return b, nil
}

// insertWithRetry runs the conditional insert, re-reading the day and
// retrying once when the insert loses a race the pre-check missed.
func (s *Service) insertWithRetry(ctx context.Context, b *Booking) error {
	err := s.repo.InsertIfNoConflict(ctx, b)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSlotTaken) {
		return err
	}

	existing, lerr := s.repo.ListForDate(ctx, b.PhotographerID.String(), b.EventDate)
	if lerr != nil {
		return &ConflictError{}
	}
	if conflicts := conflictsWith(existing, b.StartHour, b.EndHour()); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}

	// The blocking row was not visible on re-read, likely an uncommitted
	// writer. One more attempt; a second loss is reported as a conflict.
	err = s.repo.InsertIfNoConflict(ctx, b)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSlotTaken) {
		return err
	}

	existing, lerr = s.repo.ListForDate(ctx, b.PhotographerID.String(), b.EventDate)
	if lerr != nil {
		return &ConflictError{}
	}
	return &ConflictError{Conflicts: conflictsWith(existing, b.StartHour, b.EndHour())}
}

// IsAvailable reports whether the range is free on the photographer's calendar
func (s *Service) IsAvailable(ctx context.Context, photographerID string, date time.Time, startHour, durationHours int) (bool, error) {
	if startHour < 0 || startHour > 23 {
		return false, ErrInvalidStartHour
	}
	if durationHours < 1 || startHour+durationHours > 24 {
		return false, ErrInvalidDuration
	}

	existing, err := s.repo.ListForDate(ctx, photographerID, date)
	if err != nil {
		return false, err
	}
	return isFree(existing, startHour, startHour+durationHours), nil
}

// GetSlots builds the scored availability catalog for a date
func (s *Service) GetSlots(ctx context.Context, photographerID, dateStr string, durationHours int) (*SlotsResponse, error) {
	id, err := uuid.Parse(photographerID)
	if err != nil {
		return nil, ErrPhotographerNotFound
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if durationHours < 1 {
		durationHours = 1
	}
	if durationHours > 12 {
		return nil, ErrInvalidDuration
	}

	existing, err := s.repo.ListForDate(ctx, id.String(), date)
	if err != nil {
		return nil, err
	}

	return &SlotsResponse{
		PhotographerID: id,
		EventDate:      dateStr,
		DurationHours:  durationHours,
		Slots:          BuildCatalog(date, durationHours, existing),
	}, nil
}

// GetByID returns a booking visible to the requesting user
func (s *Service) GetByID(ctx context.Context, id string, userID uuid.UUID, role string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != "admin" && b.ClientID != userID && b.PhotographerID != userID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

// ListMine returns the caller's bookings, as client or photographer
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID, role string, limit, offset int) ([]Booking, int, error) {
	if role == "photographer" {
		return s.repo.ListByPhotographer(ctx, userID.String(), limit, offset)
	}
	return s.repo.ListByClient(ctx, userID.String(), limit, offset)
}

// UpdateStatus moves a booking through its lifecycle. Photographers
// confirm, complete or cancel their own bookings; clients may only
// cancel; admins may do anything.
func (s *Service) UpdateStatus(ctx context.Context, id string, userID uuid.UUID, role, newStatus string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case role == "admin":
	case b.PhotographerID == userID:
	case b.ClientID == userID:
		if newStatus != StatusCancelled {
			return nil, ErrAccessDenied
		}
	default:
		return nil, ErrAccessDenied
	}

	if !CanTransition(b.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	previous := b.Status
	b.Status = newStatus
	b.UpdatedAt = s.now().UTC()

	if s.notifier != nil {
		go func(updated Booking) {
			if err := s.notifier.BookingStatusChanged(context.Background(), &updated, previous); err != nil {
				log.Error().Err(err).Str("booking_id", updated.ID.String()).Msg("Failed to send status notification")
			}
		}(*b)
	}

	return b, nil
}
