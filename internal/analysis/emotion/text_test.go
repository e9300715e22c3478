package emotion

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duggu05-coder/Lumos/internal/analysis/sentiment"
)

type fakeScorer struct {
	out   sentiment.Sentiment
	err   error
	panic bool
	seen  []string
}

func (f *fakeScorer) Score(text string) (sentiment.Sentiment, error) {
	f.seen = append(f.seen, text)
	if f.panic {
		panic("scorer exploded")
	}
	return f.out, f.err
}

func newText(s sentiment.Scorer) *TextClassifier {
	opts := []Option{WithLogger(zerolog.Nop())}
	if s != nil {
		opts = append(opts, WithScorer(s))
	}
	return NewTextClassifier(opts...)
}

func TestClassifyTextEmptyInput(t *testing.T) {
	c := newText(nil)
	assert.Equal(t, Fallback(), c.Classify(""))
	assert.Equal(t, Fallback(), c.Classify("   \t\n"))
	assert.Equal(t, Result{Label: Neutral, Confidence: 0.5}, c.Classify(" "))
}

func TestClassifyTextSingleKeyword(t *testing.T) {
	cases := map[string]Label{
		"i am glad":             Joy,
		"everything is gloomy":  Sadness,
		"my boss left me livid": Anger,
		"i am terrified":        Fear,
		"i was appalled":        Disgust,
		"honestly astonished":   Surprise,
		"my ptsd is back":       Trauma,
		"a typical tuesday":     Neutral,
	}
	c := newText(nil)
	for text, want := range cases {
		got := c.Classify(text)
		assert.Equal(t, want, got.Label, text)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, text)
		assert.LessOrEqual(t, got.Confidence, 1.0, text)
	}
}

func TestClassifyTextNormalizesCase(t *testing.T) {
	scorer := &fakeScorer{}
	c := newText(scorer)

	got := c.Classify("  I Feel GLAD  ")
	assert.Equal(t, Joy, got.Label)
	require.Len(t, scorer.seen, 1)
	assert.Equal(t, "i feel glad", scorer.seen[0])
}

func TestClassifyTextTieGoesToEarlierLabel(t *testing.T) {
	c := newText(&fakeScorer{})

	assert.Equal(t, Sadness, c.Classify("sad and angry").Label)
	assert.Equal(t, Sadness, c.Classify("angry and sad").Label)
	assert.Equal(t, Joy, c.Classify("scared but glad").Label)
}

func TestClassifyTextHighestCountWins(t *testing.T) {
	c := newText(&fakeScorer{})

	got := c.Classify("angry, upset and gloomy")
	assert.Equal(t, Sadness, got.Label)
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)
}

func TestClassifyTextKeywordConfidence(t *testing.T) {
	c := newText(&fakeScorer{out: sentiment.Sentiment{Polarity: -0.5}})
	got := c.Classify("i am scared")
	assert.Equal(t, Fear, got.Label)
	assert.InDelta(t, 0.3+0.35, got.Confidence, 1e-9)

	capped := newText(&fakeScorer{out: sentiment.Sentiment{Polarity: 0.9}})
	got = capped.Classify("happy excited joyful cheerful")
	assert.Equal(t, Joy, got.Label)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestClassifyTextRepeatedKeywordCountsOnce(t *testing.T) {
	c := newText(&fakeScorer{})
	a, err := c.Analyze("sad sad sad")
	require.NoError(t, err)
	assert.Equal(t, []Hit{{Label: Sadness, Count: 1}}, a.Hits)
	assert.InDelta(t, 0.3, a.Confidence, 1e-9)
}

func TestClassifyTextPolarityFallback(t *testing.T) {
	cases := []struct {
		polarity float64
		want     Result
	}{
		{0.6, Result{Label: Joy, Confidence: 0.6}},
		{-0.8, Result{Label: Sadness, Confidence: 0.8}},
		{0.2, Result{Label: Neutral, Confidence: 0.8}},
		{-0.3, Result{Label: Neutral, Confidence: 0.7}},
		{0, Result{Label: Neutral, Confidence: 1}},
	}
	for _, tc := range cases {
		c := newText(&fakeScorer{out: sentiment.Sentiment{Polarity: tc.polarity}})
		got := c.Classify("the weather report for tomorrow")
		assert.Equal(t, tc.want.Label, got.Label, "polarity %v", tc.polarity)
		assert.InDelta(t, tc.want.Confidence, got.Confidence, 1e-9, "polarity %v", tc.polarity)
	}
}

func TestClassifyTextScorerFailureFallsBack(t *testing.T) {
	failing := newText(&fakeScorer{err: errors.New("boom")})
	assert.Equal(t, Fallback(), failing.Classify("i am glad"))

	_, err := failing.Analyze("i am glad")
	assert.Error(t, err)

	panicking := newText(&fakeScorer{panic: true})
	assert.Equal(t, Fallback(), panicking.Classify("i am glad"))

	outOfRange := newText(&fakeScorer{out: sentiment.Sentiment{Polarity: 3}})
	assert.Equal(t, Fallback(), outOfRange.Classify("i am glad"))
}

func TestClassifyTextInvalidUTF8FallsBack(t *testing.T) {
	assert.Equal(t, Fallback(), newText(nil).Classify("sad \xff\xfe"))
}

func TestAnalyzeKeepsSubjectivity(t *testing.T) {
	c := newText(&fakeScorer{out: sentiment.Sentiment{Polarity: 0.1, Subjectivity: 0.9}})
	a, err := c.Analyze("nothing much")
	require.NoError(t, err)
	assert.Equal(t, 0.9, a.Subjectivity)
	assert.Equal(t, Neutral, a.Label)
}

func TestClassifyTextDeterministic(t *testing.T) {
	c := newText(nil)
	text := "I'm so overwhelmed and anxious, I can't sleep and I feel down"
	first := c.Classify(text)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestClassifyTextConfidenceBounds(t *testing.T) {
	c := newText(nil)
	inputs := []string{
		"extremely wonderful amazing day",
		"terrible horrible awful miserable",
		"happy excited joyful cheerful delighted pleased glad content",
		"trauma flashback nightmare abuse assault violence grief loss",
		"it's fine",
		"zzz",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, in)
		assert.LessOrEqual(t, got.Confidence, 1.0, in)
		assert.True(t, got.Label.Valid(), in)
	}
}

func TestLexiconOrderMatchesLabels(t *testing.T) {
	lex := Lexicon()
	require.Len(t, lex, len(Labels()))
	for i, l := range Labels() {
		assert.Equal(t, l, lex[i].Label)
		assert.NotEmpty(t, lex[i].Keywords)
	}

	lex[0].Keywords[0] = "mutated"
	assert.Equal(t, "happy", Lexicon()[0].Keywords[0])
}

func TestParseLabel(t *testing.T) {
	got, ok := ParseLabel("  SADNESS ")
	assert.True(t, ok)
	assert.Equal(t, Sadness, got)

	_, ok = ParseLabel("not_a_real_label")
	assert.False(t, ok)
}
