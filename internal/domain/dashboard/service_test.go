package dashboard

import (
	"context"
	"errors"
	"testing"
)

type fakeStatusCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeStatusCounter) CountByStatus(_ context.Context) (map[string]int, error) {
	return f.counts, f.err
}

type fakeRoleCounter struct {
	counts map[string]int
}

func (f *fakeRoleCounter) CountByRole(_ context.Context) (map[string]int, error) {
	return f.counts, nil
}

type fakeSentimentCounter struct {
	counts map[string]int
}

func (f *fakeSentimentCounter) CountBySentiment(_ context.Context) (map[string]int, error) {
	return f.counts, nil
}

func TestStatsAggregates(t *testing.T) {
	svc := NewService(
		&fakeStatusCounter{counts: map[string]int{"pending": 3, "confirmed": 7}},
		&fakeRoleCounter{counts: map[string]int{"client": 40, "photographer": 12}},
		&fakeSentimentCounter{counts: map[string]int{"positive": 20, "negative": 2}},
		&fakeSentimentCounter{counts: map[string]int{"neutral": 5}},
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.BookingsByStatus["confirmed"] != 7 {
		t.Errorf("confirmed bookings = %d, want 7", stats.BookingsByStatus["confirmed"])
	}
	if stats.UsersByRole["photographer"] != 12 {
		t.Errorf("photographers = %d, want 12", stats.UsersByRole["photographer"])
	}
	if stats.ReviewSentiment["positive"] != 20 {
		t.Errorf("positive reviews = %d, want 20", stats.ReviewSentiment["positive"])
	}
	if stats.FeedbackSentiment["neutral"] != 5 {
		t.Errorf("neutral feedback = %d, want 5", stats.FeedbackSentiment["neutral"])
	}
}

func TestStatsPropagatesError(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := NewService(
		&fakeStatusCounter{err: dbErr},
		&fakeRoleCounter{},
		&fakeSentimentCounter{},
		&fakeSentimentCounter{},
	)

	if _, err := svc.Stats(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("error = %v, want %v", err, dbErr)
	}
}
