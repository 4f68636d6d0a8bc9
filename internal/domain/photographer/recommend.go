package photographer

import (
	"math"
	"sort"
	"strings"
)

const defaultRatingScore = 3.0

// MatchScore rates how well a profile fits the preferences. Rating
// contributes 30% of its value (new photographers count as 3.0),
// exact specialization match adds 2.0, location match adds 1.5,
// experience adds 0.1 per year capped at 1.0, and active listings
// get a 0.5 bump.
func MatchScore(p *Profile, prefs Preferences) float64 {
	score := 0.0

	if p.ReviewCount > 0 {
		score += p.Rating * 0.3
	} else {
		score += defaultRatingScore * 0.3
	}

	if prefs.Specialization != "" &&
		strings.EqualFold(p.Specialization, prefs.Specialization) {
		score += 2.0
	}

	if prefs.Location != "" &&
		strings.Contains(strings.ToLower(p.Location), strings.ToLower(prefs.Location)) {
		score += 1.5
	}

	score += math.Min(float64(p.YearsExperience)*0.1, 1.0)

	if p.IsActive {
		score += 0.5
	}

	return score
}

// Rank orders profiles by match score, best first, ties broken by
// rating then review count for a stable, deterministic ordering.
func Rank(profiles []Profile, prefs Preferences) []Recommendation {
	recs := make([]Recommendation, 0, len(profiles))
	for i := range profiles {
		recs = append(recs, Recommendation{
			Profile: profiles[i],
			Score:   MatchScore(&profiles[i], prefs),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Profile.Rating != recs[j].Profile.Rating {
			return recs[i].Profile.Rating > recs[j].Profile.Rating
		}
		return recs[i].Profile.ReviewCount > recs[j].Profile.ReviewCount
	})

	if prefs.Limit > 0 && len(recs) > prefs.Limit {
		recs = recs[:prefs.Limit]
	}
	return recs
}
