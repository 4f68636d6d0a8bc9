package review

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines review storage operations
type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListByPhotographer(ctx context.Context, photographerID string, limit, offset int) ([]Review, int, error)
	Summarize(ctx context.Context, photographerID string) (*Summary, error)
	CountBySentiment(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a review repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rv *Review) error {
	query := `
		INSERT INTO reviews (
			id, booking_id, client_id, photographer_id, rating,
			service_quality, communication, value_for_money, overall,
			comment, sentiment, polarity, created_at
		) VALUES (
			:id, :booking_id, :client_id, :photographer_id, :rating,
			:service_quality, :communication, :value_for_money, :overall,
			:comment, :sentiment, :polarity, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, rv)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation on booking_id
			return ErrAlreadyReviewed
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Review, error) {
	var rv Review
	err := r.db.GetContext(ctx, &rv, `SELECT * FROM reviews WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *repository) ListByPhotographer(ctx context.Context, photographerID string, limit, offset int) ([]Review, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM reviews WHERE photographer_id = $1`, photographerID); err != nil {
		return nil, 0, err
	}

	reviews := []Review{}
	query := `
		SELECT * FROM reviews
		WHERE photographer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &reviews, query, photographerID, limit, offset); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *repository) Summarize(ctx context.Context, photographerID string) (*Summary, error) {
	var agg struct {
		Count      int             `db:"count"`
		AvgOverall sql.NullFloat64 `db:"avg_overall"`
		AvgService sql.NullFloat64 `db:"avg_service"`
		AvgComms   sql.NullFloat64 `db:"avg_comms"`
		AvgValue   sql.NullFloat64 `db:"avg_value"`
	}
	query := `
		SELECT COUNT(*) AS count,
		       AVG(overall) AS avg_overall,
		       AVG(service_quality) AS avg_service,
		       AVG(communication) AS avg_comms,
		       AVG(value_for_money) AS avg_value
		FROM reviews WHERE photographer_id = $1`
	if err := r.db.GetContext(ctx, &agg, query, photographerID); err != nil {
		return nil, err
	}

	summary := &Summary{
		PhotographerID: photographerID,
		ReviewCount:    agg.Count,
		AverageOverall: round2(agg.AvgOverall.Float64),
		AverageService: round2(agg.AvgService.Float64),
		AverageComms:   round2(agg.AvgComms.Float64),
		AverageValue:   round2(agg.AvgValue.Float64),
		Distribution:   map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		Sentiment:      map[string]int{},
	}

	distRows := []struct {
		Bucket int `db:"bucket"`
		Count  int `db:"count"`
	}{}
	distQuery := `
		SELECT ROUND(overall)::int AS bucket, COUNT(*) AS count
		FROM reviews WHERE photographer_id = $1
		GROUP BY bucket`
	if err := r.db.SelectContext(ctx, &distRows, distQuery, photographerID); err != nil {
		return nil, err
	}
	for _, row := range distRows {
		summary.Distribution[row.Bucket] = row.Count
	}

	sentRows := []struct {
		Sentiment string `db:"sentiment"`
		Count     int    `db:"count"`
	}{}
	sentQuery := `
		SELECT sentiment, COUNT(*) AS count
		FROM reviews WHERE photographer_id = $1
		GROUP BY sentiment`
	if err := r.db.SelectContext(ctx, &sentRows, sentQuery, photographerID); err != nil {
		return nil, err
	}
	for _, row := range sentRows {
		summary.Sentiment[row.Sentiment] = row.Count
	}

	return summary, nil
}

func (r *repository) CountBySentiment(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Sentiment string `db:"sentiment"`
		Count     int    `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT sentiment, COUNT(*) AS count FROM reviews GROUP BY sentiment`); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Sentiment] = row.Count
	}
	return counts, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
