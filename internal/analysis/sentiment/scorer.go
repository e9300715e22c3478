// Package sentiment scores the polarity and subjectivity of short English
// texts with a fixed adjective lexicon.
package sentiment

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidText is returned for input that is not valid UTF-8.
var ErrInvalidText = errors.New("sentiment: text is not valid utf-8")

// Sentiment carries polarity in [-1,1] and subjectivity in [0,1].
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Scorer computes a Sentiment for a piece of text.
type Scorer interface {
	Score(text string) (Sentiment, error)
}

// modifierWindow is how many plain tokens a pending negation or
// intensifier survives before it is dropped.
const modifierWindow = 2

// negationFactor matches the pattern-lexicon convention of flipping and
// halving a negated word.
const negationFactor = -0.5

// LexiconScorer averages the scores of known sentiment words, applying the
// closest preceding negation and intensifiers to each of them.
type LexiconScorer struct {
	words        map[string]score
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewLexiconScorer returns a scorer backed by the built-in lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		words:        lexicon,
		intensifiers: intensifiers,
		negations:    negations,
	}
}

// Score implements Scorer. Text with no known words scores zero on both axes.
func (s *LexiconScorer) Score(text string) (Sentiment, error) {
	if !utf8.ValidString(text) {
		return Sentiment{}, ErrInvalidText
	}

	var (
		polSum, subSum float64
		hits           int
		negated        bool
		boost          = 1.0
		idle           int
	)
	for _, tok := range tokenize(text) {
		if s.isNegation(tok) {
			negated = !negated
			idle = 0
			continue
		}
		if m, ok := s.intensifiers[tok]; ok {
			boost *= m
			idle = 0
			continue
		}

		w, ok := s.words[tok]
		if !ok {
			idle++
			if idle > modifierWindow {
				negated, boost = false, 1.0
			}
			continue
		}

		pol := clamp(w.polarity*boost, -1, 1)
		if negated {
			pol *= negationFactor
		}
		polSum += pol
		subSum += clamp(w.subjectivity*boost, 0, 1)
		hits++
		negated, boost, idle = false, 1.0, 0
	}

	if hits == 0 {
		return Sentiment{}, nil
	}
	return Sentiment{
		Polarity:     clamp(polSum/float64(hits), -1, 1),
		Subjectivity: clamp(subSum/float64(hits), 0, 1),
	}, nil
}

func (s *LexiconScorer) isNegation(tok string) bool {
	if _, ok := s.negations[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
