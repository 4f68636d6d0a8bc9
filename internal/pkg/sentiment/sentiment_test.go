package sentiment

import (
	"math"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		polarity float64
		label    string
	}{
		{
			name:     "clearly positive",
			text:     "Amazing photographer, very professional and the photos were stunning!",
			polarity: 1.0,
			label:    LabelPositive,
		},
		{
			name:     "clearly negative",
			text:     "Terrible experience. The photographer was late and rude.",
			polarity: -1.0,
			label:    LabelNegative,
		},
		{
			name:     "no lexicon hits",
			text:     "The session took place on Saturday at the studio.",
			polarity: 0,
			label:    LabelNeutral,
		},
		{
			name:     "empty text",
			text:     "",
			polarity: 0,
			label:    LabelNeutral,
		},
		{
			name:     "mixed leaning positive",
			text:     "Great photos and a friendly team, although delivery was slow.",
			polarity: 1.0 / 3.0,
			label:    LabelPositive,
		},
		{
			name:     "balanced mix is neutral",
			text:     "Good photos but terrible communication.",
			polarity: 0,
			label:    LabelNeutral,
		},
		{
			name:     "case insensitive with punctuation",
			text:     "PERFECT!!! Would RECOMMEND.",
			polarity: 1.0,
			label:    LabelPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if math.Abs(got.Polarity-tt.polarity) > 1e-9 {
				t.Errorf("polarity = %v, want %v", got.Polarity, tt.polarity)
			}
			if got.Label != tt.label {
				t.Errorf("label = %q, want %q", got.Label, tt.label)
			}
		})
	}
}
