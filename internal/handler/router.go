package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Duggu05-coder/Lumos/internal/handler/analyze"
	"github.com/Duggu05-coder/Lumos/internal/handler/session"
	"github.com/Duggu05-coder/Lumos/internal/handler/wellness"
	middlewarePkg "github.com/Duggu05-coder/Lumos/internal/middleware"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/pkg/utils"
)

// NewRouter wires HTTP routes to the engine.
func NewRouter(engine *emotionservice.Service, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		session.New(engine).RegisterRoutes(api)
		wellness.New(engine).RegisterRoutes(api)

		analyzeHandler := analyze.New(engine)
		analyzeHandler.RegisterRoutes(api)
		// Live analysis channel
		analyzeHandler.RegisterWebSocketRoutes(api)
	})

	return r
}
