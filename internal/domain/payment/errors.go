package payment

import "errors"

var (
	ErrNotFound        = errors.New("payment not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrNotPayable      = errors.New("only pending bookings can be paid")
	ErrAlreadyPaid     = errors.New("booking already has a payment")
	ErrNotSucceeded    = errors.New("payment has not succeeded yet")
)
