// Package emotion combines the classifiers, the response selector and the
// record store into the operations exposed to the transport layer.
package emotion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	analysis "github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/insight"
	"github.com/Duggu05-coder/Lumos/internal/logging"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// Config controls engine construction.
type Config struct {
	Seed           *uint64 // fixed seed for reproducible replies
	MaxImagePixels int
	Logger         *zerolog.Logger // defaults to the process logger
}

// Input is one user turn in any modality.
type Input struct {
	Type          record.InputType
	Text          string
	AudioFeatures analysis.AudioFeatures
	ImageData     string
}

// Outcome is the stored record together with the reply shown to the user.
type Outcome struct {
	Record   record.EmotionRecord
	Response therapy.Bundle
}

// Service is safe for concurrent use.
type Service struct {
	text     *analysis.TextClassifier
	voice    *analysis.VoiceAdapter
	image    *analysis.ImageHeuristic
	selector *therapy.Selector
	store    record.Store
	logger   zerolog.Logger
}

// NewService wires the engine. store may be nil for classification-only use;
// Analyze and the history operations then return ErrStoreUnavailable.
func NewService(store record.Store, cfg Config) *Service {
	logger := logging.Component("engine")
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	opts := []analysis.Option{
		analysis.WithLogger(logger),
		analysis.WithMaxPixels(cfg.MaxImagePixels),
	}
	text := analysis.NewTextClassifier(opts...)

	selOpts := []therapy.Option{therapy.WithLogger(logger)}
	if cfg.Seed != nil {
		selOpts = append(selOpts, therapy.WithSeed(*cfg.Seed))
	}

	return &Service{
		text:     text,
		voice:    analysis.NewVoiceAdapter(text, opts...),
		image:    analysis.NewImageHeuristic(opts...),
		selector: therapy.NewSelector(selOpts...),
		store:    store,
		logger:   logger,
	}
}

func (s *Service) ClassifyText(text string) analysis.Result {
	return s.text.Classify(text)
}

func (s *Service) ClassifyVoice(text string, features analysis.AudioFeatures) analysis.Result {
	return s.voice.Classify(text, features)
}

func (s *Service) ClassifyFacial(data string) analysis.Result {
	return s.image.Classify(data)
}

func (s *Service) GenerateResponse(label analysis.Label, confidence float64) therapy.Bundle {
	return s.selector.Generate(label, confidence)
}

func (s *Service) BreathingExercise(name string) therapy.Exercise {
	return therapy.BreathingExercise(name)
}

func (s *Service) CopingStrategies(label analysis.Label) []string {
	return therapy.CopingStrategies(label)
}

func (s *Service) SummarizeInsights(records []record.EmotionRecord) insight.Summary {
	return insight.Summarize(records)
}

// Analyze classifies in, selects a reply and stores both. Errors come only
// from input validation and the store.
func (s *Service) Analyze(ctx context.Context, sessionID string, in Input) (Outcome, error) {
	if s.store == nil {
		return Outcome{}, ErrStoreUnavailable
	}
	if err := validate(in); err != nil {
		return Outcome{}, err
	}
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return Outcome{}, err
	}

	var (
		result  analysis.Result
		content string
	)
	switch in.Type {
	case record.InputText:
		result, content = s.ClassifyText(in.Text), strings.TrimSpace(in.Text)
	case record.InputVoice:
		result, content = s.ClassifyVoice(in.Text, in.AudioFeatures), strings.TrimSpace(in.Text)
	case record.InputFacial:
		// Image data is never persisted.
		result, content = s.ClassifyFacial(in.ImageData), record.FacialPlaceholder
	}

	rec, err := s.store.SaveRecord(ctx, record.EmotionRecord{
		SessionID:  sessionID,
		InputType:  in.Type,
		Content:    content,
		Label:      result.Label,
		Confidence: result.Confidence,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("save emotion record: %w", err)
	}

	bundle := s.GenerateResponse(result.Label, result.Confidence)
	if _, err := s.store.SaveResponse(ctx, record.TherapyResponse{
		SessionID:       sessionID,
		EmotionRecordID: rec.ID,
		ResponseText:    bundle.FullText,
		ResponseType:    record.ResponseTypeComprehensive,
		Remedies:        bundle.Remedies,
	}); err != nil {
		return Outcome{}, fmt.Errorf("save therapy response: %w", err)
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("input_type", string(in.Type)).
		Str("emotion", string(result.Label)).
		Float64("confidence", result.Confidence).
		Msg("analyzed input")
	return Outcome{Record: rec, Response: bundle}, nil
}

// Insights summarises the stored records of a session and reports how many
// there were.
func (s *Service) Insights(ctx context.Context, sessionID string) (insight.Summary, int, error) {
	if s.store == nil {
		return insight.Summary{}, 0, ErrStoreUnavailable
	}
	records, err := s.store.ListRecords(ctx, sessionID)
	if err != nil {
		return insight.Summary{}, 0, err
	}
	return s.SummarizeInsights(records), len(records), nil
}

func (s *Service) History(ctx context.Context, sessionID string) ([]record.Interaction, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.History(ctx, sessionID)
}

func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	return s.store.ClearHistory(ctx, sessionID)
}

func (s *Service) CreateSession(ctx context.Context) (record.Session, error) {
	if s.store == nil {
		return record.Session{}, ErrStoreUnavailable
	}
	return s.store.CreateSession(ctx)
}

// Session looks up an existing session.
func (s *Service) Session(ctx context.Context, id string) (record.Session, error) {
	if s.store == nil {
		return record.Session{}, ErrStoreUnavailable
	}
	return s.store.GetSession(ctx, id)
}

func validate(in Input) error {
	switch in.Type {
	case record.InputText, record.InputVoice:
		if strings.TrimSpace(in.Text) == "" {
			return fmt.Errorf("%s: %w", in.Type, ErrEmptyInput)
		}
	case record.InputFacial:
		if strings.TrimSpace(in.ImageData) == "" {
			return fmt.Errorf("%s: %w", in.Type, ErrEmptyInput)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedInput, in.Type)
	}
	return nil
}
