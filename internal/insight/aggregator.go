// Package insight summarises a session's classification history.
package insight

import (
	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
)

// Summary reports label frequencies. The zero value is the empty summary
// and encodes as {}.
type Summary struct {
	EmotionCounts      map[emotion.Label]int     `json:"emotion_counts,omitempty"`
	EmotionPercentages map[emotion.Label]float64 `json:"emotion_percentages,omitempty"`
	DominantEmotion    emotion.Label             `json:"dominant_emotion,omitempty"`
	TotalRecords       int                       `json:"total_records,omitempty"`
}

// IsEmpty reports whether s summarises no records.
func (s Summary) IsEmpty() bool {
	return s.TotalRecords == 0
}

// Summarize counts labels across records. The dominant label is the most
// frequent one; ties go to whichever label appeared first in records.
func Summarize(records []record.EmotionRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	counts := make(map[emotion.Label]int)
	var order []emotion.Label
	for _, r := range records {
		if _, seen := counts[r.Label]; !seen {
			order = append(order, r.Label)
		}
		counts[r.Label]++
	}

	total := len(records)
	percentages := make(map[emotion.Label]float64, len(counts))
	for label, n := range counts {
		percentages[label] = float64(n) / float64(total) * 100
	}

	dominant := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[dominant] {
			dominant = label
		}
	}

	return Summary{
		EmotionCounts:      counts,
		EmotionPercentages: percentages,
		DominantEmotion:    dominant,
		TotalRecords:       total,
	}
}
