package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("booking not found")
	ErrSlotTaken            = errors.New("slot already taken")
	ErrInvalidStartHour     = errors.New("start hour must be between 0 and 23")
	ErrInvalidDuration      = errors.New("duration must be between 1 and 12 hours and end within the day")
	ErrInvalidDate          = errors.New("invalid event date")
	ErrPastDate             = errors.New("event date is in the past")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAccessDenied         = errors.New("access denied")
	ErrPhotographerNotFound = errors.New("photographer not found")
)

// SlotRange is a half-open occupied interval on the requested date
type SlotRange struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// ConflictError reports that the requested range overlaps existing
// bookings. Conflicts may be empty when the losing side of a race
// cannot observe the winning row yet.
type ConflictError struct {
	Conflicts []SlotRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested slot conflicts with %d existing booking(s)", len(e.Conflicts))
}
