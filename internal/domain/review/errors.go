package review

import "errors"

var (
	ErrNotFound          = errors.New("review not found")
	ErrAlreadyReviewed   = errors.New("booking already reviewed")
	ErrBookingNotEligible = errors.New("only completed bookings can be reviewed")
	ErrAccessDenied      = errors.New("access denied")
)
