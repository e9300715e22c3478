package emotion

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/analysis/sentiment"
)

const (
	keywordWeight  = 0.3
	polarityWeight = 0.7
	// polarityThreshold separates joy/sadness from neutral when no keyword hits.
	polarityThreshold = 0.3
	logPreviewRunes   = 50
)

var errInvalidText = errors.New("text is not valid utf-8")

// Hit is the number of distinct keywords of one label found in a text.
type Hit struct {
	Label Label `json:"emotion"`
	Count int   `json:"count"`
}

// Analysis is the full outcome of scoring a text. Subjectivity is computed
// but takes no part in the decision.
type Analysis struct {
	Result
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Hits         []Hit   `json:"hits,omitempty"`
}

// TextClassifier fuses keyword hits with sentiment polarity. It holds no
// mutable state and is safe for concurrent use.
type TextClassifier struct {
	scorer sentiment.Scorer
	logger zerolog.Logger
}

// NewTextClassifier returns a classifier using the built-in sentiment
// lexicon unless WithScorer is given.
func NewTextClassifier(opts ...Option) *TextClassifier {
	o := buildOptions(opts)
	return &TextClassifier{scorer: o.scorer, logger: o.logger}
}

// Classify never fails: any analysis error degrades to Fallback.
func (c *TextClassifier) Classify(text string) Result {
	a, err := c.Analyze(text)
	if err != nil {
		c.logger.Error().Err(err).Msg("text emotion analysis failed")
		return Fallback()
	}
	c.logger.Debug().
		Str("text", preview(text)).
		Str("emotion", string(a.Label)).
		Float64("confidence", a.Confidence).
		Msg("text emotion analysis")
	return a.Result
}

// Analyze scores text and reports the decision together with its inputs.
func (c *TextClassifier) Analyze(text string) (Analysis, error) {
	if !utf8.ValidString(text) {
		return Analysis{}, errInvalidText
	}
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Analysis{Result: Fallback()}, nil
	}

	s, err := c.score(normalized)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Polarity:     s.Polarity,
		Subjectivity: s.Subjectivity,
		Hits:         countHits(normalized),
	}
	a.Result = decide(a.Hits, s.Polarity)
	return a, nil
}

func (c *TextClassifier) score(text string) (s sentiment.Sentiment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sentiment scorer panicked: %v", r)
		}
	}()
	s, err = c.scorer.Score(text)
	if err != nil {
		return sentiment.Sentiment{}, fmt.Errorf("score sentiment: %w", err)
	}
	if math.IsNaN(s.Polarity) || s.Polarity < -1 || s.Polarity > 1 {
		return sentiment.Sentiment{}, fmt.Errorf("polarity out of range: %v", s.Polarity)
	}
	return s, nil
}

// countHits returns labels with at least one keyword present, in lexicon
// order. Each keyword counts once regardless of repetitions.
func countHits(text string) []Hit {
	var hits []Hit
	for _, entry := range keywordLexicon {
		n := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, Hit{Label: entry.Label, Count: n})
		}
	}
	return hits
}

func decide(hits []Hit, polarity float64) Result {
	var best *Hit
	for i := range hits {
		// Strictly greater keeps the earliest label on ties.
		if best == nil || hits[i].Count > best.Count {
			best = &hits[i]
		}
	}
	if best != nil {
		conf := keywordWeight*float64(best.Count) + polarityWeight*math.Abs(polarity)
		return Result{Label: best.Label, Confidence: math.Min(conf, 1.0)}
	}

	switch {
	case polarity > polarityThreshold:
		return Result{Label: Joy, Confidence: ClampConfidence(polarity)}
	case polarity < -polarityThreshold:
		return Result{Label: Sadness, Confidence: ClampConfidence(math.Abs(polarity))}
	default:
		return Result{Label: Neutral, Confidence: ClampConfidence(1 - math.Abs(polarity))}
	}
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= logPreviewRunes {
		return text
	}
	return string(r[:logPreviewRunes]) + "..."
}
