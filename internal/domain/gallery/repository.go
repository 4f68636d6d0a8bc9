package gallery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines photo storage operations
type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByPhotographer(ctx context.Context, photographerID string) ([]Photo, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a gallery repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO gallery_photos (
			id, photographer_id, title, category, object_key, url,
			thumbnail_key, thumbnail_url, width, height, created_at
		) VALUES (
			:id, :photographer_id, :title, :category, :object_key, :url,
			:thumbnail_key, :thumbnail_url, :width, :height, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Photo, error) {
	var p Photo
	err := r.db.GetContext(ctx, &p, `SELECT * FROM gallery_photos WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByPhotographer(ctx context.Context, photographerID string) ([]Photo, error) {
	photos := []Photo{}
	query := `
		SELECT * FROM gallery_photos
		WHERE photographer_id = $1
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &photos, query, photographerID); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
