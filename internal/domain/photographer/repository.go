package photographer

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ListFilter narrows profile listings
type ListFilter struct {
	Specialization string
	Location       string
	Limit          int
	Offset         int
}

// Repository defines photographer profile storage operations
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	List(ctx context.Context, filter ListFilter) ([]Profile, int, error)
	ListActive(ctx context.Context) ([]Profile, error)
	UpdateRating(ctx context.Context, userID string, rating float64, reviewCount int) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a photographer repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO photographer_profiles (
			id, user_id, display_name, bio, specialization, location,
			years_experience, rating, review_count, is_active, created_at, updated_at
		) VALUES (
			:id, :user_id, :display_name, :bio, :specialization, :location,
			:years_experience, :rating, :review_count, :is_active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation on user_id
			return ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM photographer_profiles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT * FROM photographer_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	query := `
		UPDATE photographer_profiles SET
			display_name = :display_name,
			bio = :bio,
			specialization = :specialization,
			location = :location,
			years_experience = :years_experience,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, p)
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

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Profile, int, error) {
	conditions := []string{"is_active = TRUE"}
	args := []interface{}{}

	if filter.Specialization != "" {
		args = append(args, filter.Specialization)
		conditions = append(conditions, "specialization = $"+strconv.Itoa(len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+strings.ToLower(filter.Location)+"%")
		conditions = append(conditions, "LOWER(location) LIKE $"+strconv.Itoa(len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM photographer_profiles`+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	query := `SELECT * FROM photographer_profiles` + where +
		` ORDER BY rating DESC, review_count DESC LIMIT $` + strconv.Itoa(len(args)-1) +
		` OFFSET $` + strconv.Itoa(len(args))

	profiles := []Profile{}
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Profile, error) {
	profiles := []Profile{}
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT * FROM photographer_profiles WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateRating stores the review aggregate. Keyed by user_id because
// bookings and reviews reference the photographer's account, not the
// profile row.
func (r *repository) UpdateRating(ctx context.Context, userID string, rating float64, reviewCount int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE photographer_profiles SET rating = $1, review_count = $2, updated_at = NOW() WHERE user_id = $3`,
		rating, reviewCount, userID)
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
