package feedback

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines feedback storage operations
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context, limit, offset int) ([]Feedback, int, error)
	CountBySentiment(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a feedback repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, subject, message, sentiment, polarity, created_at)
		VALUES (:id, :user_id, :subject, :message, :sentiment, :polarity, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, f)
	return err
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Feedback, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM feedback`); err != nil {
		return nil, 0, err
	}

	items := []Feedback{}
	query := `SELECT * FROM feedback ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) CountBySentiment(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Sentiment string `db:"sentiment"`
		Count     int    `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT sentiment, COUNT(*) AS count FROM feedback GROUP BY sentiment`); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Sentiment] = row.Count
	}
	return counts, nil
}
