package sentiment

import (
	"strings"
	"unicode"
)

// Label values returned by Analyze.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Result holds the polarity score and its label.
// Polarity is in [-1, 1]; the label cuts at +/-0.1.
type Result struct {
	Polarity float64 `json:"polarity"`
	Label    string  `json:"label"`
}

var positiveWords = map[string]struct{}{
	"amazing": {}, "awesome": {}, "beautiful": {}, "best": {},
	"brilliant": {}, "creative": {}, "excellent": {}, "fantastic": {},
	"friendly": {}, "good": {}, "great": {}, "happy": {},
	"helpful": {}, "incredible": {}, "love": {}, "loved": {},
	"nice": {}, "outstanding": {}, "perfect": {}, "professional": {},
	"punctual": {}, "recommend": {}, "stunning": {}, "superb": {},
	"talented": {}, "wonderful": {},
}

var negativeWords = map[string]struct{}{
	"awful": {}, "bad": {}, "blurry": {}, "cancelled": {},
	"delayed": {}, "disappointed": {}, "disappointing": {}, "expensive": {},
	"horrible": {}, "late": {}, "mediocre": {}, "missed": {},
	"never": {}, "poor": {}, "rude": {}, "slow": {},
	"terrible": {}, "unprofessional": {}, "unresponsive": {}, "waste": {},
	"worst": {},
}

// Analyze scores free text with a word-count lexicon. Polarity is the
// signed balance of matched words over total matches, so a text with no
// lexicon hits is neutral.
func Analyze(text string) Result {
	var positive, negative int

	for _, word := range tokenize(text) {
		if _, ok := positiveWords[word]; ok {
			positive++
			continue
		}
		if _, ok := negativeWords[word]; ok {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return Result{Polarity: 0, Label: LabelNeutral}
	}

	polarity := float64(positive-negative) / float64(total)

	label := LabelNeutral
	if polarity > 0.1 {
		label = LabelPositive
	} else if polarity < -0.1 {
		label = LabelNegative
	}

	return Result{Polarity: polarity, Label: label}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
