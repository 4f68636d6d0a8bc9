package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses
const (
	StatusCreated   = "created"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Flat hourly deposit charged to confirm a booking, in cents. The
// deposit is independent of the dynamic quote shown to the client.
const depositCentsPerHour = 5000

// Payment represents a booking deposit charged through Stripe
type Payment struct {
	ID             uuid.UUID `db:"id" json:"id"`
	BookingID      uuid.UUID `db:"booking_id" json:"booking_id"`
	ClientID       uuid.UUID `db:"client_id" json:"client_id"`
	AmountCents    int64     `db:"amount_cents" json:"amount_cents"`
	Currency       string    `db:"currency" json:"currency"`
	StripeIntentID string    `db:"stripe_intent_id" json:"-"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DepositFor computes the deposit for a booking duration
func DepositFor(durationHours int) int64 {
	return int64(durationHours) * depositCentsPerHour
}
