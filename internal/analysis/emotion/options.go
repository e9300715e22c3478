package emotion

import (
	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/analysis/sentiment"
	"github.com/Duggu05-coder/Lumos/internal/logging"
)

// DefaultMaxPixels bounds the image size the facial heuristic will decode.
const DefaultMaxPixels = 16 << 20

type options struct {
	logger    zerolog.Logger
	scorer    sentiment.Scorer
	maxPixels int
}

// Option configures a classifier.
type Option func(*options)

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScorer replaces the sentiment scorer used by the text classifier.
func WithScorer(s sentiment.Scorer) Option {
	return func(o *options) {
		if s != nil {
			o.scorer = s
		}
	}
}

// WithMaxPixels caps width*height for decoded images. Non-positive values
// keep the default.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPixels = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:    logging.Component("emotion"),
		scorer:    sentiment.NewLexiconScorer(),
		maxPixels: DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
