package analyze

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duggu05-coder/Lumos/internal/model/record"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/service/session"
)

func setupRouter(t *testing.T) (*chi.Mux, string) {
	t.Helper()
	nop := zerolog.Nop()
	seed := uint64(3)
	engine := emotionservice.NewService(session.NewService(), emotionservice.Config{Seed: &seed, Logger: &nop})
	sess, err := engine.CreateSession(context.Background())
	require.NoError(t, err)

	handler := New(engine)
	handler.logger = nop
	handler.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	handler.RegisterWebSocketRoutes(r)
	return r, sess.ID
}

func post(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func brightPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAnalyzeTextReturnsPayload(t *testing.T) {
	r, sessionID := setupRouter(t)

	resp := post(t, r, "/analyze/text", map[string]string{"sessionId": sessionID, "text": "I feel so happy and grateful"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body Payload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "joy", body.Emotion)
	assert.Greater(t, body.Confidence, 0.0)
	assert.Equal(t, "2024-05-01T12:00:00Z", body.Timestamp)
	assert.NotEmpty(t, body.TherapyResponse.FullText)
	assert.Equal(t, body.Emotion, string(body.TherapyResponse.Label))
}

func TestAnalyzeMissingInputMessages(t *testing.T) {
	r, sessionID := setupRouter(t)

	cases := map[string]string{
		"/analyze/text":   "No text provided",
		"/analyze/voice":  "No voice text provided",
		"/analyze/facial": "No image data provided",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			resp := post(t, r, path, map[string]string{"sessionId": sessionID, "text": "   "})
			require.Equal(t, http.StatusBadRequest, resp.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, want, body["error"])
		})
	}
}

func TestAnalyzeSessionErrors(t *testing.T) {
	r, _ := setupRouter(t)

	resp := post(t, r, "/analyze/text", map[string]string{"text": "hello"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = post(t, r, "/analyze/text", map[string]string{"sessionId": "missing", "text": "hello"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAnalyzeInvalidBody(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze/text", strings.NewReader("{"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAnalyzeVoiceAndFacial(t *testing.T) {
	r, sessionID := setupRouter(t)

	resp := post(t, r, "/analyze/voice", map[string]any{
		"sessionId":     sessionID,
		"text":          "I am terrified",
		"audioFeatures": map[string]float64{"pitch": 220},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var voice Payload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &voice))
	assert.Equal(t, "fear", voice.Emotion)

	resp = post(t, r, "/analyze/facial", map[string]string{"sessionId": sessionID, "imageData": brightPNG(t)})
	require.Equal(t, http.StatusOK, resp.Code)
	var facial Payload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &facial))
	// Uniform image: bright but no contrast.
	assert.Equal(t, "neutral", facial.Emotion)
	assert.InDelta(t, 0.7, facial.Confidence, 1e-9)
}

func TestAnalyzeUnreadableImageFallsBack(t *testing.T) {
	r, sessionID := setupRouter(t)

	resp := post(t, r, "/analyze/facial", map[string]string{"sessionId": sessionID, "imageData": "data:image/png;base64,!!!"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body Payload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "neutral", body.Emotion)
	assert.InDelta(t, 0.5, body.Confidence, 1e-9)
}

func TestDescribeErrorMapsUnknownToServerError(t *testing.T) {
	status, message := describeError(record.InputText, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Analysis failed", message)
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + sessionID
	return websocket.DefaultDialer.Dial(url, nil)
}

func TestWebSocketRoundTrip(t *testing.T) {
	r, sessionID := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := dial(t, srv, sessionID)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "text",
		"data": map[string]string{"text": "I am so angry and frustrated"},
	}))

	var msg struct {
		Type      string  `json:"type"`
		Data      Payload `json:"data"`
		Timestamp int64   `json:"timestamp"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "analysis", msg.Type)
	assert.Equal(t, "anger", msg.Data.Emotion)
	assert.NotZero(t, msg.Timestamp)
}

func TestWebSocketRejectsBadFrames(t *testing.T) {
	r, sessionID := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := dial(t, srv, sessionID)
	require.NoError(t, err)
	defer conn.Close()

	frames := []map[string]any{
		{"type": "config", "data": map[string]string{}},
		{"type": "text", "data": map[string]string{"text": ""}},
	}
	want := []string{"unsupported message type: config", "No text provided"}

	for i, frame := range frames {
		require.NoError(t, conn.WriteJSON(frame))

		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "error", msg.Type)
		assert.Equal(t, want[i], msg.Data["message"])
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	r, _ := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, resp, err := dial(t, srv, "missing")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
