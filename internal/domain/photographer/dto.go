package photographer

// CreateProfileRequest is the payload for creating a profile
type CreateProfileRequest struct {
	DisplayName     string `json:"display_name" validate:"required,min=2,max=100"`
	Bio             string `json:"bio" validate:"max=2000"`
	Specialization  string `json:"specialization" validate:"required,event_type"`
	Location        string `json:"location" validate:"required,max=255"`
	YearsExperience int    `json:"years_experience" validate:"gte=0,lte=60"`
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name" validate:"omitempty,min=2,max=100"`
	Bio             *string `json:"bio" validate:"omitempty,max=2000"`
	Specialization  *string `json:"specialization" validate:"omitempty,event_type"`
	Location        *string `json:"location" validate:"omitempty,max=255"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,gte=0,lte=60"`
	IsActive        *bool   `json:"is_active"`
}

// Preferences drive the recommendation ranking
type Preferences struct {
	Specialization string
	Location       string
	Limit          int
}

// Recommendation pairs a profile with its match score
type Recommendation struct {
	Profile Profile `json:"profile"`
	Score   float64 `json:"score"`
}
