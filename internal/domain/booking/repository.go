package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines booking storage operations
type Repository interface {
	// InsertIfNoConflict atomically inserts the booking unless a blocking
	// booking overlaps the requested range. Returns ErrSlotTaken when the
	// range is occupied.
	InsertIfNoConflict(ctx context.Context, b *Booking) error
	ListForDate(ctx context.Context, photographerID string, date time.Time) ([]Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Booking, int, error)
	ListByPhotographer(ctx context.Context, photographerID string, limit, offset int) ([]Booking, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// The WHERE NOT EXISTS insert is the serialization point for the slot:
// two racing inserts for overlapping ranges cannot both commit, the
// loser affects zero rows.
func (r *repository) InsertIfNoConflict(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, client_id, photographer_id, event_date, start_hour,
			duration_hours, event_type, location, notes, status,
			created_at, updated_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE photographer_id = $3
			  AND event_date = $4
			  AND status IN ('pending', 'confirmed')
			  AND NOT ($5 + $6 <= start_hour OR $5 >= start_hour + duration_hours)
		)`

	result, err := r.db.ExecContext(ctx, query,
		b.ID, b.ClientID, b.PhotographerID, b.EventDate, b.StartHour,
		b.DurationHours, b.EventType, b.Location, b.Notes, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23503": // foreign_key_violation
				return ErrPhotographerNotFound
			case "23514": // check_violation
				return ErrInvalidDuration
			}
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSlotTaken
	}
	return nil
}

func (r *repository) ListForDate(ctx context.Context, photographerID string, date time.Time) ([]Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE photographer_id = $1
		  AND event_date = $2
		  AND status IN ('pending', 'confirmed')
		ORDER BY start_hour`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, photographerID, date); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Booking, int, error) {
	return r.list(ctx, "client_id", clientID, limit, offset)
}

func (r *repository) ListByPhotographer(ctx context.Context, photographerID string, limit, offset int) ([]Booking, int, error) {
	return r.list(ctx, "photographer_id", photographerID, limit, offset)
}

func (r *repository) list(ctx context.Context, column, id string, limit, offset int) ([]Booking, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE ` + column + ` = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, id); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM bookings
		WHERE ` + column + ` = $1
		ORDER BY event_date DESC, start_hour DESC
		LIMIT $2 OFFSET $3`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, id, limit, offset); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
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

func (r *repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	query := `SELECT status, COUNT(*) AS count FROM bookings GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
