package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/domain/user"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
	"github.com/capturemoments/capture-api/internal/pkg/password"
)

// Service handles registration, login and token refresh
type Service struct {
	users user.Repository
	jwt   *jwt.Service
}

// NewService creates an auth service
func NewService(users user.Repository, jwtService *jwt.Service) *Service {
	return &Service{users: users, jwt: jwtService}
}

// Register creates an account and issues a token pair
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Role == user.RoleAdmin {
		return nil, ErrAdminRegistration
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         req.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", u.ID.String()).Str("role", u.Role).Msg("User registered")

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Tokens: *tokens}, nil
}

// Login verifies credentials and issues a token pair
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Tokens: *tokens}, nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, claims.UserID.String())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(u)
}

// Me returns the authenticated user's profile
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, userID.String())
}

func (s *Service) issueTokens(u *user.User) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID, u.Role, u.IsActive)
	if err != nil {
		return nil, err
	}
	refresh, _, _, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwt.GetAccessTTL().Seconds()),
	}, nil
}
