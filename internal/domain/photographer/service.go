package photographer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles photographer profile operations
type Service struct {
	repo Repository
}

// NewService creates a photographer service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProfile creates the caller's photographer profile
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:              uuid.New(),
		UserID:          userID,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		Location:        req.Location,
		YearsExperience: req.YearsExperience,
		Rating:          0,
		ReviewCount:     0,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile applies partial updates to the caller's own profile
func (s *Service) UpdateProfile(ctx context.Context, id string, userID uuid.UUID, role string, req UpdateProfileRequest) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != "admin" && p.UserID != userID {
		return nil, ErrAccessDenied
	}

	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Specialization != nil {
		p.Specialization = *req.Specialization
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.YearsExperience != nil {
		p.YearsExperience = *req.YearsExperience
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a profile by ID
func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUser returns the profile owned by a user
func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID.String())
}

// RatingByUserID returns a photographer's aggregate rating and review count
func (s *Service) RatingByUserID(ctx context.Context, userID string) (float64, int, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return p.Rating, p.ReviewCount, nil
}

// List returns active profiles matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Profile, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

// Recommend ranks active photographers against the client's preferences
func (s *Service) Recommend(ctx context.Context, prefs Preferences) ([]Recommendation, error) {
	if prefs.Limit <= 0 || prefs.Limit > 50 {
		prefs.Limit = 10
	}

	profiles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(profiles, prefs), nil
}
