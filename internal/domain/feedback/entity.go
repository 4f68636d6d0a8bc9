package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback represents free-form platform feedback from a user
type Feedback struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	Sentiment string    `db:"sentiment" json:"sentiment"`
	Polarity  float64   `db:"polarity" json:"polarity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the payload for submitting feedback
type CreateRequest struct {
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
