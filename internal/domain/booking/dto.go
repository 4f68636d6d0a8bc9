package booking

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the payload for creating a booking
type CreateRequest struct {
	PhotographerID string `json:"photographer_id" validate:"required,uuid"`
	EventDate      string `json:"event_date" validate:"required,event_date"`
	StartHour      int    `json:"start_hour" validate:"gte=0,lte=23"`
	DurationHours  *int   `json:"duration_hours" validate:"omitempty,gte=1,lte=12"`
	EventType      string `json:"event_type" validate:"event_type"`
	Location       string `json:"location" validate:"max=255"`
	Notes          string `json:"notes" validate:"max=2000"`
}

// UpdateStatusRequest is the payload for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

// Response is the API shape of a booking
type Response struct {
	ID             uuid.UUID `json:"id"`
	ClientID       uuid.UUID `json:"client_id"`
	PhotographerID uuid.UUID `json:"photographer_id"`
	EventDate      string    `json:"event_date"`
	StartHour      int       `json:"start_hour"`
	EndHour        int       `json:"end_hour"`
	DurationHours  int       `json:"duration_hours"`
	EventType      string    `json:"event_type"`
	Location       string    `json:"location"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts a booking to its API shape
func ToResponse(b *Booking) Response {
	return Response{
		ID:             b.ID,
		ClientID:       b.ClientID,
		PhotographerID: b.PhotographerID,
		EventDate:      b.EventDate.Format(time.DateOnly),
		StartHour:      b.StartHour,
		EndHour:        b.EndHour(),
		DurationHours:  b.DurationHours,
		EventType:      b.EventType,
		Location:       b.Location,
		Notes:          b.Notes,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

// Slot is one open entry of the availability catalog for a date
type Slot struct {
	StartHour   int     `json:"start_hour"`
	EndHour     int     `json:"end_hour"`
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Recommended bool    `json:"recommended"`
}

// SlotsResponse is the availability catalog for a photographer and date
type SlotsResponse struct {
	PhotographerID uuid.UUID `json:"photographer_id"`
	EventDate      string    `json:"event_date"`
	DurationHours  int       `json:"duration_hours"`
	Slots          []Slot    `json:"slots"`
}
