package photographer

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a photographer's public listing
type Profile struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	DisplayName     string    `db:"display_name" json:"display_name"`
	Bio             string    `db:"bio" json:"bio,omitempty"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Location        string    `db:"location" json:"location"`
	YearsExperience int       `db:"years_experience" json:"years_experience"`
	Rating          float64   `db:"rating" json:"rating"`
	ReviewCount     int       `db:"review_count" json:"review_count"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
