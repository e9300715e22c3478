// Package therapy holds the static response catalog and selects a
// therapeutic reply for a detected emotion.
package therapy

import "github.com/Duggu05-coder/Lumos/internal/analysis/emotion"

// Kind tags what sort of activity a remedy is.
type Kind string

const (
	KindJoke        Kind = "joke"
	KindSong        Kind = "song"
	KindBreathing   Kind = "breathing"
	KindGrounding   Kind = "grounding"
	KindActivity    Kind = "activity"
	KindMindfulness Kind = "mindfulness"
	KindSelfCare    Kind = "self-care"
	KindConnection  Kind = "connection"
)

// Remedy is one suggested coping activity.
type Remedy struct {
	Kind        Kind   `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Entry is the catalog data for a single label. Encouragements may be empty.
type Entry struct {
	Validations    []string `json:"validations"`
	Encouragements []string `json:"encouragements,omitempty"`
	Remedies       []Remedy `json:"remedies"`
}

func (e Entry) clone() Entry {
	return Entry{
		Validations:    append([]string(nil), e.Validations...),
		Encouragements: append([]string(nil), e.Encouragements...),
		Remedies:       append([]Remedy(nil), e.Remedies...),
	}
}

// Lookup returns a copy of the catalog entry for label.
func Lookup(label emotion.Label) (Entry, bool) {
	e, ok := catalog[label]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}
