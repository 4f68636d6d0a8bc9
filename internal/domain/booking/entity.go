package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking represents a reserved time range on a photographer's calendar.
// Times are whole hours on the event date; the occupied interval is
// [StartHour, StartHour+DurationHours).
type Booking struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ClientID       uuid.UUID `db:"client_id" json:"client_id"`
	PhotographerID uuid.UUID `db:"photographer_id" json:"photographer_id"`
	EventDate      time.Time `db:"event_date" json:"event_date"`
	StartHour      int       `db:"start_hour" json:"start_hour"`
	DurationHours  int       `db:"duration_hours" json:"duration_hours"`
	EventType      string    `db:"event_type" json:"event_type"`
	Location       string    `db:"location" json:"location"`
	Notes          string    `db:"notes" json:"notes,omitempty"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// EndHour returns the exclusive end of the occupied interval
func (b *Booking) EndHour() int {
	return b.StartHour + b.DurationHours
}

// Overlaps reports whether [startHour, endHour) intersects this booking.
// Back-to-back bookings do not overlap: an end hour equal to the next
// start hour is allowed.
func (b *Booking) Overlaps(startHour, endHour int) bool {
	return !(endHour <= b.StartHour || startHour >= b.EndHour())
}

// Blocks reports whether this booking occupies its slot for conflict
// purposes. Cancelled bookings free the slot immediately.
func (b *Booking) Blocks() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// validTransitions maps each status to the statuses it may move to
var validTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a status change is allowed
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}
