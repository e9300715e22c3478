package emotion

import "github.com/rs/zerolog"

// AudioFeatures holds prosodic measurements such as pitch or speaking rate.
// It is accepted by VoiceAdapter but does not yet influence the decision.
type AudioFeatures map[string]float64

// VoiceAdapter classifies transcribed speech through a TextClassifier.
type VoiceAdapter struct {
	text   *TextClassifier
	logger zerolog.Logger
}

// NewVoiceAdapter wraps text. A nil text classifier gets a default one.
func NewVoiceAdapter(text *TextClassifier, opts ...Option) *VoiceAdapter {
	o := buildOptions(opts)
	if text == nil {
		text = NewTextClassifier(opts...)
	}
	return &VoiceAdapter{text: text, logger: o.logger}
}

// Classify delegates to the text classifier. features may be nil.
func (v *VoiceAdapter) Classify(transcript string, features AudioFeatures) Result {
	res := v.text.Classify(transcript)
	v.logger.Debug().
		Str("text", preview(transcript)).
		Int("audio_features", len(features)).
		Str("emotion", string(res.Label)).
		Msg("voice emotion analysis")
	return res
}
