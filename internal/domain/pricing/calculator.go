package pricing

import (
	"math"
	"strings"
	"time"
)

const defaultBasePrice = 500.0

// basePrices maps event-type categories to their base price
var basePrices = map[string]float64{
	"wedding":    1500,
	"portrait":   300,
	"event":      800,
	"commercial": 1200,
	"family":     400,
}

// cityMultipliers is ordered; the first city found as a substring of
// the location wins, so table order is part of the contract.
var cityMultipliers = []struct {
	city       string
	multiplier float64
}{
	{"mumbai", 1.5},
	{"delhi", 1.4},
	{"bangalore", 1.3},
	{"hyderabad", 1.2},
	{"chennai", 1.2},
	{"pune", 1.1},
}

// weddingSeasonMonths carry a seasonal premium on the date factor
var weddingSeasonMonths = map[time.Month]bool{
	time.December: true,
	time.May:      true,
	time.June:     true,
}

// demandSeasonMonths carry elevated demand on weekdays
var demandSeasonMonths = map[time.Month]bool{
	time.November: true,
	time.December: true,
	time.January:  true,
	time.February: true,
	time.May:      true,
	time.June:     true,
}

// Factors itemizes the multipliers applied to the base price
type Factors struct {
	Location float64 `json:"location_multiplier"`
	Date     float64 `json:"date_multiplier"`
	Duration float64 `json:"duration_multiplier"`
	Rating   float64 `json:"rating_multiplier"`
	Demand   float64 `json:"demand_multiplier"`
}

// Quote is a computed price with its factor breakdown. Factors is nil
// when the date could not be parsed and the quote fell back to base.
type Quote struct {
	EventType  string   `json:"event_type"`
	BasePrice  float64  `json:"base_price"`
	FinalPrice float64  `json:"final_price"`
	Factors    *Factors `json:"factors"`
}

// Calculate computes a dynamic price quote. A quote is always produced:
// an unparseable date degrades to the base price with no factors rather
// than returning an error.
func Calculate(eventType, location, dateStr string, durationHours, photographerRating float64) Quote {
	base := defaultBasePrice
	if p, ok := basePrices[strings.ToLower(eventType)]; ok {
		base = p
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return Quote{
			EventType:  eventType,
			BasePrice:  base,
			FinalPrice: base,
		}
	}

	factors := Factors{
		Location: locationMultiplier(location),
		Date:     dateMultiplier(date),
		Duration: math.Max(1.0, durationHours/2.0),
		Rating:   math.Max(0.8, photographerRating/5.0),
		Demand:   demandMultiplier(date),
	}

	final := base * factors.Location * factors.Date * factors.Duration * factors.Rating * factors.Demand

	return Quote{
		EventType:  eventType,
		BasePrice:  base,
		FinalPrice: math.Round(final*100) / 100,
		Factors:    &factors,
	}
}

func locationMultiplier(location string) float64 {
	loc := strings.ToLower(location)
	for _, entry := range cityMultipliers {
		if strings.Contains(loc, entry.city) {
			return entry.multiplier
		}
	}
	return 1.0
}

// dateMultiplier combines the weekend premium with the wedding-season
// premium; the two stack additively on top of 1.0.
func dateMultiplier(date time.Time) float64 {
	m := 1.0
	if isWeekend(date) {
		m += 0.2
	}
	if weddingSeasonMonths[date.Month()] {
		m += 0.15
	}
	return m
}

func demandMultiplier(date time.Time) float64 {
	if isWeekend(date) {
		return 1.2
	}
	if demandSeasonMonths[date.Month()] {
		return 1.15
	}
	return 1.0
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
