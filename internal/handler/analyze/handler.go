package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/logging"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
	"github.com/Duggu05-coder/Lumos/pkg/utils"
)

// Handler 情绪识别的HTTP处理器
type Handler struct {
	engine *emotionservice.Service
	logger zerolog.Logger
	now    func() time.Time
}

// New 创建识别处理器
func New(engine *emotionservice.Service) *Handler {
	return &Handler{
		engine: engine,
		logger: logging.Component("analyze"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes 注册识别相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze/text", h.handleAnalyze(record.InputText))
	r.Post("/analyze/voice", h.handleAnalyze(record.InputVoice))
	r.Post("/analyze/facial", h.handleAnalyze(record.InputFacial))
}

// Request is the body of the analyze routes and the data of live frames.
type Request struct {
	SessionID     string             `json:"sessionId"`
	Text          string             `json:"text"`
	AudioFeatures map[string]float64 `json:"audioFeatures,omitempty"`
	ImageData     string             `json:"imageData"`
}

// Payload is returned for every successful analysis.
type Payload struct {
	Emotion         string         `json:"emotion"`
	Confidence      float64        `json:"confidence"`
	TherapyResponse therapy.Bundle `json:"therapy_response"`
	Timestamp       string         `json:"timestamp"`
}

func (h *Handler) handleAnalyze(kind record.InputType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload Request
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, status, err := h.analyze(r.Context(), payload.SessionID, payload.input(kind))
		if err != nil {
			utils.RespondError(w, status, err.Error())
			return
		}
		utils.RespondJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) analyze(ctx context.Context, sessionID string, in emotionservice.Input) (Payload, int, error) {
	outcome, err := h.engine.Analyze(ctx, sessionID, in)
	if err != nil {
		status, message := describeError(in.Type, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error().Err(err).Str("session_id", sessionID).Str("input_type", string(in.Type)).Msg("analysis failed")
		}
		return Payload{}, status, errors.New(message)
	}
	return Payload{
		Emotion:         string(outcome.Record.Label),
		Confidence:      outcome.Record.Confidence,
		TherapyResponse: outcome.Response,
		Timestamp:       h.now().Format(time.RFC3339),
	}, http.StatusOK, nil
}

func (p Request) input(kind record.InputType) emotionservice.Input {
	return emotionservice.Input{
		Type:          kind,
		Text:          p.Text,
		AudioFeatures: p.AudioFeatures,
		ImageData:     p.ImageData,
	}
}

var emptyInputMessages = map[record.InputType]string{
	record.InputText:   "No text provided",
	record.InputVoice:  "No voice text provided",
	record.InputFacial: "No image data provided",
}

// describeError maps engine errors to a status and a client-facing message.
func describeError(kind record.InputType, err error) (int, string) {
	switch {
	case errors.Is(err, emotionservice.ErrEmptyInput):
		return http.StatusBadRequest, emptyInputMessages[kind]
	case errors.Is(err, emotionservice.ErrUnsupportedInput):
		return http.StatusBadRequest, "unsupported input type"
	case errors.Is(err, record.ErrSessionRequired):
		return http.StatusBadRequest, "sessionId is required"
	case errors.Is(err, record.ErrSessionNotFound):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, emotionservice.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "history storage unavailable"
	default:
		return http.StatusInternalServerError, "Analysis failed"
	}
}
