package therapy

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/logging"
)

// MaxRemedies is the most remedies a single bundle carries.
const MaxRemedies = 2

const (
	fallbackValidation    = "I'm here to listen and support you."
	fallbackEncouragement = "Take a moment to breathe deeply."
)

var errNoValidations = errors.New("catalog entry has no validations")

// Bundle is the full reply for one classification.
type Bundle struct {
	Validation    string        `json:"validation"`
	Encouragement string        `json:"encouragement"`
	Remedies      []Remedy      `json:"remedies"`
	FullText      string        `json:"full_response"`
	Label         emotion.Label `json:"emotion"`
	Confidence    float64       `json:"confidence"`
}

// FallbackBundle is returned whenever a reply cannot be assembled.
func FallbackBundle() Bundle {
	return Bundle{
		Validation:    fallbackValidation,
		Encouragement: fallbackEncouragement,
		Remedies:      []Remedy{},
		FullText:      fallbackValidation + " " + fallbackEncouragement,
		Label:         emotion.Neutral,
		Confidence:    emotion.FallbackConfidence,
	}
}

// Selector draws replies from the catalog. The random source is the only
// mutable state and is guarded, so one Selector may serve concurrent callers.
type Selector struct {
	mu      sync.Mutex
	rng     *rand.Rand
	catalog map[emotion.Label]Entry
	logger  zerolog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand injects the random source, typically for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed seeds a PCG source with seed.
func WithSeed(seed uint64) Option {
	return func(s *Selector) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Selector) { s.logger = l }
}

func withCatalog(c map[emotion.Label]Entry) Option {
	return func(s *Selector) { s.catalog = c }
}

// NewSelector returns a Selector seeded from system entropy unless WithRand
// or WithSeed is given.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		catalog: catalog,
		logger:  logging.Component("therapy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = entropyRand()
	}
	return s
}

// Generate picks a validation, an encouragement and up to MaxRemedies
// distinct remedies for label. Unknown labels use the neutral entry. It
// never fails; assembly errors yield FallbackBundle.
func (s *Selector) Generate(label emotion.Label, confidence float64) Bundle {
	b, err := s.build(label, confidence)
	if err != nil {
		s.logger.Error().Err(err).Str("emotion", string(label)).Msg("generate therapy response failed")
		return FallbackBundle()
	}
	s.logger.Debug().
		Str("emotion", string(b.Label)).
		Int("length", len(b.FullText)).
		Msg("generated therapy response")
	return b
}

func (s *Selector) build(raw emotion.Label, confidence float64) (b Bundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("select response: %v", r)
		}
	}()

	label, ok := emotion.ParseLabel(string(raw))
	if !ok {
		label = emotion.Neutral
	}
	entry, ok := s.catalog[label]
	if !ok {
		return Bundle{}, fmt.Errorf("no catalog entry for %q", label)
	}
	if len(entry.Validations) == 0 {
		return Bundle{}, fmt.Errorf("%s: %w", label, errNoValidations)
	}

	validation, encouragement, remedies := s.draw(entry)

	full := validation
	if encouragement != "" {
		full += "\n\n" + encouragement
	}

	return Bundle{
		Validation:    validation,
		Encouragement: encouragement,
		Remedies:      remedies,
		FullText:      full,
		Label:         label,
		Confidence:    clampConfidence(confidence),
	}, nil
}

func (s *Selector) draw(entry Entry) (validation, encouragement string, remedies []Remedy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	validation = entry.Validations[s.rng.IntN(len(entry.Validations))]
	if n := len(entry.Encouragements); n > 0 {
		encouragement = entry.Encouragements[s.rng.IntN(n)]
	}
	return validation, encouragement, sample(s.rng, entry.Remedies, MaxRemedies)
}

// sample draws min(k, len(items)) entries without replacement.
func sample(r *rand.Rand, items []Remedy, k int) []Remedy {
	if len(items) <= k {
		return append([]Remedy{}, items...)
	}
	out := make([]Remedy, 0, k)
	for _, i := range r.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

func clampConfidence(v float64) float64 {
	if math.IsNaN(v) {
		return emotion.FallbackConfidence
	}
	return emotion.ClampConfidence(v)
}

func entropyRand() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(seed))
}
