package review

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/capturemoments/capture-api/internal/domain/booking"
)

type fakeBookings struct {
	byID map[string]*booking.Booking
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, booking.ErrNotFound
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []Review
}

func (f *fakeReviewRepo) Create(_ context.Context, rv *Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.reviews {
		if f.reviews[i].BookingID == rv.BookingID {
			return ErrAlreadyReviewed
		}
	}
	f.reviews = append(f.reviews, *rv)
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.reviews {
		if f.reviews[i].ID.String() == id {
			rv := f.reviews[i]
			return &rv, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeReviewRepo) ListByPhotographer(_ context.Context, photographerID string, limit, offset int) ([]Review, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Review
	for i := range f.reviews {
		if f.reviews[i].PhotographerID.String() == photographerID {
			out = append(out, f.reviews[i])
		}
	}
	return out, len(out), nil
}

func (f *fakeReviewRepo) Summarize(_ context.Context, photographerID string) (*Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := &Summary{
		PhotographerID: photographerID,
		Distribution:   map[int]int{},
		Sentiment:      map[string]int{},
	}
	var sum float64
	for i := range f.reviews {
		rv := &f.reviews[i]
		if rv.PhotographerID.String() != photographerID {
			continue
		}
		summary.ReviewCount++
		sum += rv.Overall
		summary.Distribution[int(math.Round(rv.Overall))]++
		summary.Sentiment[rv.Sentiment]++
	}
	if summary.ReviewCount > 0 {
		summary.AverageOverall = sum / float64(summary.ReviewCount)
	}
	return summary, nil
}

func (f *fakeReviewRepo) CountBySentiment(_ context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := map[string]int{}
	for i := range f.reviews {
		counts[f.reviews[i].Sentiment]++
	}
	return counts, nil
}

func completedBooking(clientID, photographerID uuid.UUID) *booking.Booking {
	return &booking.Booking{
		ID:             uuid.New(),
		ClientID:       clientID,
		PhotographerID: photographerID,
		EventDate:      time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
		StartHour:      10,
		DurationHours:  2,
		Status:         booking.StatusCompleted,
	}
}

func TestCreateReview(t *testing.T) {
	clientID := uuid.New()
	photographerID := uuid.New()
	b := completedBooking(clientID, photographerID)

	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeBookings{byID: map[string]*booking.Booking{b.ID.String(): b}}, nil)

	rv, err := svc.Create(context.Background(), clientID, CreateRequest{
		BookingID:      b.ID.String(),
		Rating:         5,
		ServiceQuality: 4,
		Communication:  5,
		ValueForMoney:  4,
		Comment:        "Amazing work, the photos were stunning",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if math.Abs(rv.Overall-4.5) > 1e-9 {
		t.Errorf("overall = %v, want 4.5", rv.Overall)
	}
	if rv.Sentiment != "positive" {
		t.Errorf("sentiment = %q, want positive", rv.Sentiment)
	}
	if rv.PhotographerID != photographerID {
		t.Error("photographer ID not taken from the booking")
	}
}

func TestCreateReviewOnlyCompleted(t *testing.T) {
	clientID := uuid.New()
	b := completedBooking(clientID, uuid.New())
	b.Status = booking.StatusConfirmed

	svc := NewService(&fakeReviewRepo{}, &fakeBookings{byID: map[string]*booking.Booking{b.ID.String(): b}}, nil)

	_, err := svc.Create(context.Background(), clientID, CreateRequest{
		BookingID: b.ID.String(), Rating: 5, ServiceQuality: 5, Communication: 5, ValueForMoney: 5,
	})
	if !errors.Is(err, ErrBookingNotEligible) {
		t.Errorf("error = %v, want ErrBookingNotEligible", err)
	}
}

func TestCreateReviewOwnBookingOnly(t *testing.T) {
	b := completedBooking(uuid.New(), uuid.New())

	svc := NewService(&fakeReviewRepo{}, &fakeBookings{byID: map[string]*booking.Booking{b.ID.String(): b}}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{
		BookingID: b.ID.String(), Rating: 5, ServiceQuality: 5, Communication: 5, ValueForMoney: 5,
	})
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("error = %v, want ErrAccessDenied", err)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	clientID := uuid.New()
	b := completedBooking(clientID, uuid.New())

	svc := NewService(&fakeReviewRepo{}, &fakeBookings{byID: map[string]*booking.Booking{b.ID.String(): b}}, nil)

	req := CreateRequest{
		BookingID: b.ID.String(), Rating: 5, ServiceQuality: 5, Communication: 5, ValueForMoney: 5,
	}
	if _, err := svc.Create(context.Background(), clientID, req); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	_, err := svc.Create(context.Background(), clientID, req)
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("error = %v, want ErrAlreadyReviewed", err)
	}
}

func TestCreateReviewNegativeComment(t *testing.T) {
	clientID := uuid.New()
	b := completedBooking(clientID, uuid.New())

	svc := NewService(&fakeReviewRepo{}, &fakeBookings{byID: map[string]*booking.Booking{b.ID.String(): b}}, nil)

	rv, err := svc.Create(context.Background(), clientID, CreateRequest{
		BookingID: b.ID.String(), Rating: 2, ServiceQuality: 1, Communication: 2, ValueForMoney: 1,
		Comment: "Terrible experience, the photographer was late and rude",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rv.Sentiment != "negative" {
		t.Errorf("sentiment = %q, want negative", rv.Sentiment)
	}
	if math.Abs(rv.Overall-1.5) > 1e-9 {
		t.Errorf("overall = %v, want 1.5", rv.Overall)
	}
}

func TestOverallOf(t *testing.T) {
	tests := []struct {
		r, sq, c, v float64
		want        float64
	}{
		{5, 5, 5, 5, 5},
		{1, 1, 1, 1, 1},
		{5, 4, 5, 4, 4.5},
		{3, 4, 2, 5, 3.5},
	}

	for _, tt := range tests {
		if got := OverallOf(tt.r, tt.sq, tt.c, tt.v); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OverallOf(%v,%v,%v,%v) = %v, want %v", tt.r, tt.sq, tt.c, tt.v, got, tt.want)
		}
	}
}
