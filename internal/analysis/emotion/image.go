package emotion

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Brightness and contrast cut-offs for the facial heuristic. They are
// uncalibrated placeholders kept for behavioral parity, not validated
// thresholds for facial affect.
const (
	joyMinBrightness       = 150
	joyMinContrast         = 50
	sadnessMaxBrightness   = 100
	surpriseMinContrast    = 80
	joyImageConfidence     = 0.6
	sadImageConfidence     = 0.5
	surpriseConfidence     = 0.5
	neutralImageConfidence = 0.7
)

var (
	errEmptyImage      = errors.New("empty image payload")
	errMalformedURI    = errors.New("data uri has no payload")
	errImageTooLarge   = errors.New("image exceeds pixel limit")
	errImageHasNoPixel = errors.New("image has no pixels")
)

// ImageStats are global intensity statistics over every colour sample.
type ImageStats struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
}

// ImageHeuristic maps global brightness and contrast of an image to an
// emotion. It does not detect faces or expressions; it stands in for a real
// facial affect model.
type ImageHeuristic struct {
	maxPixels int
	logger    zerolog.Logger
}

// NewImageHeuristic returns a heuristic honouring WithMaxPixels and WithLogger.
func NewImageHeuristic(opts ...Option) *ImageHeuristic {
	o := buildOptions(opts)
	return &ImageHeuristic{maxPixels: o.maxPixels, logger: o.logger}
}

// Classify accepts base64 image data, optionally wrapped in a
// data:image/...;base64, URI. Any failure degrades to Fallback.
func (h *ImageHeuristic) Classify(data string) Result {
	if strings.TrimSpace(data) == "" {
		return Fallback()
	}
	stats, err := h.Measure(data)
	if err != nil {
		h.logger.Error().Err(err).Msg("facial emotion analysis failed")
		return Fallback()
	}
	res := DecideImage(stats)
	h.logger.Debug().
		Float64("brightness", stats.Brightness).
		Float64("contrast", stats.Contrast).
		Str("emotion", string(res.Label)).
		Msg("facial emotion analysis")
	return res
}

// Measure decodes data and computes its ImageStats.
func (h *ImageHeuristic) Measure(data string) (ImageStats, error) {
	raw, err := decodePayload(data)
	if err != nil {
		return ImageStats{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return ImageStats{}, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageStats{}, errImageHasNoPixel
	}
	if cfg.Width > h.maxPixels/cfg.Height {
		return ImageStats{}, fmt.Errorf("%w: %dx%d", errImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return ImageStats{}, fmt.Errorf("decode image: %w", err)
	}
	return MeasureImage(img)
}

// MeasureImage computes mean and population standard deviation over the R,
// G and B samples of every pixel. Alpha is discarded.
func MeasureImage(img image.Image) (ImageStats, error) {
	b := img.Bounds()
	if b.Empty() {
		return ImageStats{}, errImageHasNoPixel
	}

	var sum, sumSq float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			for _, v := range [3]uint8{c.R, c.G, c.B} {
				f := float64(v)
				sum += f
				sumSq += f * f
			}
		}
	}

	n := float64(b.Dx()) * float64(b.Dy()) * 3
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return ImageStats{Brightness: mean, Contrast: math.Sqrt(variance)}, nil
}

// DecideImage applies the brightness/contrast rules; the first match wins.
func DecideImage(s ImageStats) Result {
	switch {
	case s.Brightness > joyMinBrightness && s.Contrast > joyMinContrast:
		return Result{Label: Joy, Confidence: joyImageConfidence}
	case s.Brightness < sadnessMaxBrightness:
		return Result{Label: Sadness, Confidence: sadImageConfidence}
	case s.Contrast > surpriseMinContrast:
		return Result{Label: Surprise, Confidence: surpriseConfidence}
	default:
		return Result{Label: Neutral, Confidence: neutralImageConfidence}
	}
}

func decodePayload(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if strings.Contains(data, "data:image") {
		_, payload, ok := strings.Cut(data, ",")
		if !ok {
			return nil, errMalformedURI
		}
		data = payload
	}
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errEmptyImage
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		var rawErr error
		if raw, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "=")); rawErr != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
	}
	return raw, nil
}
