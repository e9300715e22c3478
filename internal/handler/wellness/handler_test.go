package wellness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
)

func setupRouter() *chi.Mux {
	nop := zerolog.Nop()
	handler := New(emotionservice.NewService(nil, emotionservice.Config{Logger: &nop}))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestBreathingExercise(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/breathing/box")
	require.Equal(t, http.StatusOK, resp.Code)
	var ex therapy.Exercise
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ex))
	assert.Equal(t, "Box Breathing", ex.Name)

	resp = get(r, "/breathing/unknown")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ex))
	assert.Equal(t, therapy.BreathingExercise(therapy.DefaultExercise), ex)
}

func TestCopingStrategies(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/coping/anger")
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Emotion    string   `json:"emotion"`
		Strategies []string `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "anger", body.Emotion)
	assert.Contains(t, body.Strategies, "Count to 10 before responding")

	resp = get(r, "/coping/boredom")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"Take deep breaths", "Practice mindfulness", "Be kind to yourself"}, body.Strategies)
}
