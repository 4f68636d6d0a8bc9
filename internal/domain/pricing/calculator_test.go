package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateWeddingSaturdayMumbai(t *testing.T) {
	// 2024-05-18 is a Saturday in wedding season.
	q := Calculate("wedding", "Mumbai", "2024-05-18", 4, 4.8)

	if q.BasePrice != 1500 {
		t.Errorf("base = %v, want 1500", q.BasePrice)
	}
	if q.Factors == nil {
		t.Fatal("expected factor breakdown")
	}

	f := q.Factors
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"location", f.Location, 1.5},
		{"date", f.Date, 1.35},
		{"duration", f.Duration, 2.0},
		{"rating", f.Rating, 0.96},
		{"demand", f.Demand, 1.2},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s multiplier = %v, want %v", c.name, c.got, c.want)
		}
	}

	if !almostEqual(q.FinalPrice, 6998.40) {
		t.Errorf("final = %v, want 6998.40", q.FinalPrice)
	}
}

func TestCalculatePortraitWeekdayChennai(t *testing.T) {
	// 2024-03-04 is a Monday outside both premium month sets.
	q := Calculate("portrait", "Chennai", "2024-03-04", 2, 4.0)

	if q.BasePrice != 300 {
		t.Errorf("base = %v, want 300", q.BasePrice)
	}
	if q.Factors == nil {
		t.Fatal("expected factor breakdown")
	}

	f := q.Factors
	if !almostEqual(f.Location, 1.2) || !almostEqual(f.Date, 1.0) ||
		!almostEqual(f.Duration, 1.0) || !almostEqual(f.Rating, 0.8) ||
		!almostEqual(f.Demand, 1.0) {
		t.Errorf("factors = %+v", f)
	}

	if !almostEqual(q.FinalPrice, 288.0) {
		t.Errorf("final = %v, want 288.0", q.FinalPrice)
	}
}

func TestCalculateDefaults(t *testing.T) {
	t.Run("unknown event type uses default base", func(t *testing.T) {
		q := Calculate("drone-tour", "Nowhere", "2024-03-04", 2, 5.0)
		if q.BasePrice != 500 {
			t.Errorf("base = %v, want 500", q.BasePrice)
		}
	})

	t.Run("unknown location multiplies by 1.0", func(t *testing.T) {
		q := Calculate("portrait", "Springfield", "2024-03-04", 2, 5.0)
		if !almostEqual(q.Factors.Location, 1.0) {
			t.Errorf("location multiplier = %v, want 1.0", q.Factors.Location)
		}
	})

	t.Run("event type is case insensitive", func(t *testing.T) {
		q := Calculate("WEDDING", "Pune", "2024-03-04", 2, 5.0)
		if q.BasePrice != 1500 {
			t.Errorf("base = %v, want 1500", q.BasePrice)
		}
	})
}

func TestLocationSubstringMatch(t *testing.T) {
	tests := []struct {
		location string
		want     float64
	}{
		{"Andheri West, Mumbai", 1.5},
		{"NEW DELHI", 1.4},
		{"bangalore urban", 1.3},
		{"Hyderabad", 1.2},
		{"chennai central", 1.2},
		{"Pune, Maharashtra", 1.1},
		{"Kolkata", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		if got := locationMultiplier(tt.location); !almostEqual(got, tt.want) {
			t.Errorf("locationMultiplier(%q) = %v, want %v", tt.location, got, tt.want)
		}
	}
}

func TestDateParseFallback(t *testing.T) {
	tests := []string{"18-05-2024", "not-a-date", "2024/05/18", ""}

	for _, bad := range tests {
		q := Calculate("wedding", "Mumbai", bad, 4, 4.8)
		if q.BasePrice != 1500 {
			t.Errorf("date %q: base = %v, want 1500", bad, q.BasePrice)
		}
		if q.FinalPrice != q.BasePrice {
			t.Errorf("date %q: final = %v, want base price", bad, q.FinalPrice)
		}
		if q.Factors != nil {
			t.Errorf("date %q: expected empty factor breakdown", bad)
		}
	}
}

func TestDurationMultiplierFloor(t *testing.T) {
	tests := []struct {
		duration float64
		want     float64
	}{
		{0.5, 1.0},
		{1, 1.0},
		{2, 1.0},
		{3, 1.5},
		{4, 2.0},
		{8, 4.0},
	}

	for _, tt := range tests {
		q := Calculate("portrait", "Kolkata", "2024-03-04", tt.duration, 5.0)
		if !almostEqual(q.Factors.Duration, tt.want) {
			t.Errorf("duration %v: multiplier = %v, want %v", tt.duration, q.Factors.Duration, tt.want)
		}
	}
}

func TestRatingMultiplierFloor(t *testing.T) {
	tests := []struct {
		rating float64
		want   float64
	}{
		{0, 0.8},
		{2.0, 0.8},
		{4.0, 0.8},
		{4.5, 0.9},
		{5.0, 1.0},
	}

	for _, tt := range tests {
		q := Calculate("portrait", "Kolkata", "2024-03-04", 2, tt.rating)
		if !almostEqual(q.Factors.Rating, tt.want) {
			t.Errorf("rating %v: multiplier = %v, want %v", tt.rating, q.Factors.Rating, tt.want)
		}
	}
}

func TestDemandMultiplier(t *testing.T) {
	tests := []struct {
		name string
		date string
		want float64
	}{
		{"weekend", "2024-05-18", 1.2},
		{"weekday in demand season", "2024-12-02", 1.15},
		{"weekday off season", "2024-03-04", 1.0},
		{"weekend beats season", "2024-12-07", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate("portrait", "Kolkata", tt.date, 2, 5.0)
			if !almostEqual(q.Factors.Demand, tt.want) {
				t.Errorf("demand = %v, want %v", q.Factors.Demand, tt.want)
			}
		})
	}
}
