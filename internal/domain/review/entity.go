package review

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a client's rating of a completed booking. Overall
// is the mean of the four sub-ratings, fixed at creation time.
type Review struct {
	ID             uuid.UUID `db:"id" json:"id"`
	BookingID      uuid.UUID `db:"booking_id" json:"booking_id"`
	ClientID       uuid.UUID `db:"client_id" json:"client_id"`
	PhotographerID uuid.UUID `db:"photographer_id" json:"photographer_id"`
	Rating         float64   `db:"rating" json:"rating"`
	ServiceQuality float64   `db:"service_quality" json:"service_quality"`
	Communication  float64   `db:"communication" json:"communication"`
	ValueForMoney  float64   `db:"value_for_money" json:"value_for_money"`
	Overall        float64   `db:"overall" json:"overall"`
	Comment        string    `db:"comment" json:"comment,omitempty"`
	Sentiment      string    `db:"sentiment" json:"sentiment"`
	Polarity       float64   `db:"polarity" json:"polarity"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// OverallOf computes the overall rating from the four sub-ratings
func OverallOf(rating, serviceQuality, communication, valueForMoney float64) float64 {
	return (rating + serviceQuality + communication + valueForMoney) / 4.0
}
