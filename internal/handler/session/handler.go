package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/insight"
	"github.com/Duggu05-coder/Lumos/internal/logging"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
	"github.com/Duggu05-coder/Lumos/pkg/utils"
)

// facialDisplay replaces the stored facial placeholder in history views.
const facialDisplay = "Facial expression"

// Handler 会话与历史记录的HTTP处理器
type Handler struct {
	engine *emotionservice.Service
	logger zerolog.Logger
	now    func() time.Time
}

// New 创建会话处理器
func New(engine *emotionservice.Service) *Handler {
	return &Handler{
		engine: engine,
		logger: logging.Component("session"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes 注册会话相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/insights", h.handleInsights)
		r.Get("/history", h.handleHistory)
		r.Delete("/history", h.handleClearHistory)
	})
}

type insightsResponse struct {
	Insights        insight.Summary `json:"insights"`
	SessionDuration int             `json:"session_duration"`
	Timestamp       string          `json:"timestamp"`
}

type conversationEntry struct {
	Timestamp       string           `json:"timestamp"`
	InputType       record.InputType `json:"input_type"`
	InputContent    string           `json:"input_content"`
	DetectedEmotion string           `json:"detected_emotion"`
	Confidence      float64          `json:"confidence"`
	TherapyResponse string           `json:"therapy_response"`
	Remedies        []therapy.Remedy `json:"remedies"`
}

type historyResponse struct {
	Conversation      []conversationEntry `json:"conversation"`
	TotalInteractions int                 `json:"total_interactions"`
}

// handleCreateSession 创建匿名会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.engine.CreateSession(r.Context())
	if err != nil {
		h.respondStoreError(w, err, "Could not create session")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, sess)
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	summary, count, err := h.engine.Insights(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondStoreError(w, err, "Could not retrieve insights")
		return
	}
	utils.RespondJSON(w, http.StatusOK, insightsResponse{
		Insights:        summary,
		SessionDuration: count,
		Timestamp:       h.now().Format(time.RFC3339),
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	interactions, err := h.engine.History(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondStoreError(w, err, "Could not retrieve conversation history")
		return
	}

	conversation := make([]conversationEntry, 0, len(interactions))
	for _, it := range interactions {
		content := it.Record.Content
		if it.Record.InputType == record.InputFacial {
			content = facialDisplay
		}
		remedies := it.Response.Remedies
		if remedies == nil {
			remedies = []therapy.Remedy{}
		}
		conversation = append(conversation, conversationEntry{
			Timestamp:       it.Record.Timestamp.UTC().Format(time.RFC3339),
			InputType:       it.Record.InputType,
			InputContent:    content,
			DetectedEmotion: string(it.Record.Label),
			Confidence:      it.Record.Confidence,
			TherapyResponse: it.Response.ResponseText,
			Remedies:        remedies,
		})
	}

	utils.RespondJSON(w, http.StatusOK, historyResponse{
		Conversation:      conversation,
		TotalInteractions: len(conversation),
	})
}

func (h *Handler) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ClearHistory(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.respondStoreError(w, err, "Could not clear session history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Session history cleared successfully",
	})
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, record.ErrSessionRequired):
		utils.RespondError(w, http.StatusBadRequest, "No active session")
	case errors.Is(err, record.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, emotionservice.ErrStoreUnavailable):
		utils.RespondError(w, http.StatusServiceUnavailable, "history storage unavailable")
	default:
		h.logger.Error().Err(err).Msg(fallback)
		utils.RespondError(w, http.StatusInternalServerError, fallback)
	}
}
