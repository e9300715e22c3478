package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/service/session"
)

func newTestRouter() http.Handler {
	nop := zerolog.Nop()
	engine := emotionservice.NewService(session.NewService(), emotionservice.Config{Logger: &nop})
	return NewRouter(engine, nop)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestSessionThenAnalyzeThroughRouter(t *testing.T) {
	r := newTestRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/session", nil))
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("Access-Control-Allow-Origin"))

	var sess struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sess))

	payload, _ := json.Marshal(map[string]string{"sessionId": sess.ID, "text": "I feel sad and hopeless"})
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "sadness", body["emotion"])
	assert.Contains(t, body, "therapy_response")
}

func TestLiveChannelMountedUnderAPI(t *testing.T) {
	r := newTestRouter()
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/ws/missing", nil))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
