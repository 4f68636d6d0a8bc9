package gallery

import (
	"time"

	"github.com/google/uuid"
)

// Photo represents a portfolio image stored in object storage
type Photo struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PhotographerID uuid.UUID `db:"photographer_id" json:"photographer_id"`
	Title          string    `db:"title" json:"title"`
	Category       string    `db:"category" json:"category"`
	ObjectKey      string    `db:"object_key" json:"-"`
	URL            string    `db:"url" json:"url"`
	ThumbnailKey   string    `db:"thumbnail_key" json:"-"`
	ThumbnailURL   string    `db:"thumbnail_url" json:"thumbnail_url"`
	Width          int       `db:"width" json:"width"`
	Height         int       `db:"height" json:"height"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
