package review

// CreateRequest is the payload for submitting a review
type CreateRequest struct {
	BookingID      string  `json:"booking_id" validate:"required,uuid"`
	Rating         float64 `json:"rating" validate:"required,gte=1,lte=5"`
	ServiceQuality float64 `json:"service_quality" validate:"required,gte=1,lte=5"`
	Communication  float64 `json:"communication" validate:"required,gte=1,lte=5"`
	ValueForMoney  float64 `json:"value_for_money" validate:"required,gte=1,lte=5"`
	Comment        string  `json:"comment" validate:"max=2000"`
}

// Summary aggregates a photographer's reviews
type Summary struct {
	PhotographerID string         `json:"photographer_id"`
	ReviewCount    int            `json:"review_count"`
	AverageOverall float64        `json:"average_overall"`
	AverageService float64        `json:"average_service_quality"`
	AverageComms   float64        `json:"average_communication"`
	AverageValue   float64        `json:"average_value_for_money"`
	Distribution   map[int]int    `json:"distribution"`
	Sentiment      map[string]int `json:"sentiment"`
}
