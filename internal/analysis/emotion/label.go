// Package emotion classifies a user's emotional state from text, transcribed
// speech or a facial image.
package emotion

import (
	"math"
	"strings"
)

// Label is one of the fixed emotion categories.
type Label string

// Declaration order matters: it breaks ties between equal keyword counts.
const (
	Joy      Label = "joy"
	Sadness  Label = "sadness"
	Anger    Label = "anger"
	Fear     Label = "fear"
	Disgust  Label = "disgust"
	Surprise Label = "surprise"
	Trauma   Label = "trauma"
	Neutral  Label = "neutral"
)

var labels = [...]Label{Joy, Sadness, Anger, Fear, Disgust, Surprise, Trauma, Neutral}

// Labels returns every label in declaration order.
func Labels() []Label {
	return append([]Label(nil), labels[:]...)
}

// ParseLabel matches raw case-insensitively against the known labels.
func ParseLabel(raw string) (Label, bool) {
	normalized := Label(strings.ToLower(strings.TrimSpace(raw)))
	for _, l := range labels {
		if l == normalized {
			return l, true
		}
	}
	return "", false
}

// Valid reports whether l is a known label.
func (l Label) Valid() bool {
	for _, known := range labels {
		if known == l {
			return true
		}
	}
	return false
}

// Result is a single classification.
type Result struct {
	Label      Label   `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// FallbackConfidence is reported whenever a classifier degrades to neutral.
const FallbackConfidence = 0.5

// Fallback is the result every classifier returns on empty or unusable input.
func Fallback() Result {
	return Result{Label: Neutral, Confidence: FallbackConfidence}
}

// ClampConfidence bounds v to [0,1].
func ClampConfidence(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
