package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeRatings struct {
	rating  float64
	reviews int
	err     error
}

func (f *fakeRatings) RatingByUserID(_ context.Context, _ string) (float64, int, error) {
	return f.rating, f.reviews, f.err
}

type envelope struct {
	Success bool  `json:"success"`
	Data    Quote `json:"data"`
}

func doQuote(t *testing.T, h *Handler, url string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.GetQuote(rec, req)

	var env envelope
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, env
}

func TestGetQuoteDefaults(t *testing.T) {
	h := NewHandler(NewService(nil, 0), nil)

	rec, env := doQuote(t, h, "/quote?date=2024-03-04")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// portrait 300, no city, Monday in March, 2h, rating 4.0 -> 300*0.8
	if env.Data.FinalPrice != 240.0 {
		t.Errorf("final price = %v, want 240.0", env.Data.FinalPrice)
	}
}

func TestGetQuoteRequiresDate(t *testing.T) {
	h := NewHandler(NewService(nil, 0), nil)

	rec, _ := doQuote(t, h, "/quote?event_type=wedding")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetQuoteUsesPhotographerRating(t *testing.T) {
	h := NewHandler(NewService(nil, 0), &fakeRatings{rating: 5.0, reviews: 12})

	_, env := doQuote(t, h, "/quote?date=2024-03-04&photographer_id=abc")
	if env.Data.FinalPrice != 300.0 {
		t.Errorf("final price = %v, want 300.0 with a 5.0 aggregate rating", env.Data.FinalPrice)
	}
}

func TestGetQuoteUnreviewedPhotographerKeepsDefault(t *testing.T) {
	h := NewHandler(NewService(nil, 0), &fakeRatings{rating: 0, reviews: 0})

	_, env := doQuote(t, h, "/quote?date=2024-03-04&photographer_id=abc")
	if env.Data.FinalPrice != 240.0 {
		t.Errorf("final price = %v, want 240.0 with the 4.0 default", env.Data.FinalPrice)
	}
}

func TestGetQuoteRatingLookupFailureFallsBack(t *testing.T) {
	h := NewHandler(NewService(nil, 0), &fakeRatings{err: errors.New("not found")})

	rec, env := doQuote(t, h, "/quote?date=2024-03-04&photographer_id=abc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Data.FinalPrice != 240.0 {
		t.Errorf("final price = %v, want 240.0 fallback", env.Data.FinalPrice)
	}
}

func TestGetQuoteExplicitRatingWins(t *testing.T) {
	h := NewHandler(NewService(nil, 0), &fakeRatings{rating: 2.5, reviews: 12})

	_, env := doQuote(t, h, "/quote?date=2024-03-04&photographer_id=abc&rating=5.0")
	if env.Data.FinalPrice != 300.0 {
		t.Errorf("final price = %v, want 300.0 from the explicit rating", env.Data.FinalPrice)
	}
}
