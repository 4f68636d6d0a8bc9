package booking

import (
	"fmt"
	"sort"
	"time"
)

// Working day bounds for the slot catalog. Start hours run from
// CatalogOpenHour up to CatalogCloseHour-duration so every offered
// slot ends by closing time.
const (
	CatalogOpenHour  = 9
	CatalogCloseHour = 20
)

const recommendThreshold = 0.7

// ScoreSlot rates the attractiveness of a start hour on a date.
// Golden-hour starts rate highest, late morning next, and anything
// outside 09:00-19:00 is penalized. Weekends get a small bump.
// The result is clamped to [0, 1].
func ScoreSlot(date time.Time, startHour int) float64 {
	score := 0.5

	switch {
	case startHour >= 16 && startHour <= 18:
		score += 0.3
	case startHour >= 10 && startHour <= 12:
		score += 0.2
	}

	if startHour < 9 || startHour > 19 {
		score -= 0.2
	}

	if isWeekend(date) {
		score += 0.1
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// BuildCatalog produces the open slots of the hourly catalog for a
// date, dropping start hours that collide with the given bookings and
// ranking by score descending, ties broken by earlier start.
func BuildCatalog(date time.Time, durationHours int, existing []Booking) []Slot {
	slots := []Slot{}
	for start := CatalogOpenHour; start+durationHours <= CatalogCloseHour; start++ {
		end := start + durationHours
		if !isFree(existing, start, end) {
			continue
		}
		score := ScoreSlot(date, start)
		slots = append(slots, Slot{
			StartHour:   start,
			EndHour:     end,
			Label:       fmt.Sprintf("%02d:00-%02d:00", start, end),
			Score:       score,
			Recommended: score > recommendThreshold,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		return slots[i].StartHour < slots[j].StartHour
	})
	return slots
}

// isFree reports whether [startHour, endHour) avoids every blocking booking
func isFree(existing []Booking, startHour, endHour int) bool {
	for i := range existing {
		if existing[i].Blocks() && existing[i].Overlaps(startHour, endHour) {
			return false
		}
	}
	return true
}

// conflictsWith collects the occupied ranges intersecting [startHour, endHour)
func conflictsWith(existing []Booking, startHour, endHour int) []SlotRange {
	var conflicts []SlotRange
	for i := range existing {
		if existing[i].Blocks() && existing[i].Overlaps(startHour, endHour) {
			conflicts = append(conflicts, SlotRange{
				StartHour: existing[i].StartHour,
				EndHour:   existing[i].EndHour(),
			})
		}
	}
	return conflicts
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
