package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/pkg/imageproc"
	"github.com/capturemoments/capture-api/internal/pkg/storage"
)

// Service handles portfolio photo uploads and listings
type Service struct {
	repo  Repository
	store storage.Storage
}

// NewService creates a gallery service
func NewService(repo Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

// Upload processes an image, stores the preview and thumbnail variants
// and records the photo.
func (s *Service) Upload(ctx context.Context, photographerID uuid.UUID, title, category string, file io.Reader) (*Photo, error) {
	processed, err := imageproc.Process(file)
	if err != nil {
		return nil, ErrInvalidImage
	}

	id := uuid.New()
	objectKey := fmt.Sprintf("gallery/%s/%s.jpg", photographerID, id)
	thumbKey := fmt.Sprintf("gallery/%s/%s_thumb.jpg", photographerID, id)

	url, err := s.store.Upload(ctx, objectKey, bytes.NewReader(processed.Preview), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}
	thumbURL, err := s.store.Upload(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	p := &Photo{
		ID:             id,
		PhotographerID: photographerID,
		Title:          title,
		Category:       category,
		ObjectKey:      objectKey,
		URL:            url,
		ThumbnailKey:   thumbKey,
		ThumbnailURL:   thumbURL,
		Width:          processed.Width,
		Height:         processed.Height,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// The record is the source of truth; clean up orphaned objects.
		if delErr := s.store.Delete(ctx, objectKey); delErr != nil {
			log.Warn().Err(delErr).Str("key", objectKey).Msg("Failed to clean up orphaned object")
		}
		if delErr := s.store.Delete(ctx, thumbKey); delErr != nil {
			log.Warn().Err(delErr).Str("key", thumbKey).Msg("Failed to clean up orphaned object")
		}
		return nil, err
	}

	return p, nil
}

// ListByPhotographer returns a photographer's photos grouped by category
func (s *Service) ListByPhotographer(ctx context.Context, photographerID string) (map[string][]Photo, error) {
	photos, err := s.repo.ListByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]Photo{}
	for _, p := range photos {
		category := p.Category
		if category == "" {
			category = "other"
		}
		grouped[category] = append(grouped[category], p)
	}
	return grouped, nil
}

// Delete removes a photo owned by the caller
func (s *Service) Delete(ctx context.Context, id string, userID uuid.UUID, role string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role != "admin" && p.PhotographerID != userID {
		return ErrAccessDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, p.ObjectKey); err != nil {
		log.Warn().Err(err).Str("key", p.ObjectKey).Msg("Failed to delete object")
	}
	if err := s.store.Delete(ctx, p.ThumbnailKey); err != nil {
		log.Warn().Err(err).Str("key", p.ThumbnailKey).Msg("Failed to delete thumbnail")
	}
	return nil
}
