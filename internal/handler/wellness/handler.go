package wellness

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/pkg/utils"
)

// Handler serves the static breathing and coping references.
type Handler struct {
	engine *emotionservice.Service
}

func New(engine *emotionservice.Service) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/breathing/{exercise}", h.handleBreathing)
	r.Get("/coping/{emotion}", h.handleCoping)
}

// Unknown exercise names answer with the basic exercise.
func (h *Handler) handleBreathing(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.engine.BreathingExercise(chi.URLParam(r, "exercise")))
}

func (h *Handler) handleCoping(w http.ResponseWriter, r *http.Request) {
	label := emotion.Label(chi.URLParam(r, "emotion"))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"emotion":    label,
		"strategies": h.engine.CopingStrategies(label),
	})
}
