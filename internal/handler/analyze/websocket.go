package analyze

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Duggu05-coder/Lumos/internal/model/record"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
)

// RegisterWebSocketRoutes 注册实时识别的WebSocket路由
func (h *Handler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// handleWebSocket 处理WebSocket连接
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.engine.Session(r.Context(), sessionID); err != nil {
		status, message := describeError("", err)
		http.Error(w, message, status)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := h.logger.With().Str("session_id", sessionID).Logger()
	logger.Info().Msg("websocket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	ws := &liveConn{conn: conn}
	go ws.pingLoop(ctx)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(ctx, ws, sessionID, msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, ws *liveConn, sessionID string, msg inboundMessage) {
	kind := record.InputType(msg.Type)
	if _, ok := emptyInputMessages[kind]; !ok {
		ws.sendError("unsupported message type: " + msg.Type)
		return
	}

	var req Request
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			ws.sendError("invalid " + msg.Type + " payload")
			return
		}
	}

	result, _, err := h.analyze(ctx, sessionID, req.input(kind))
	if err != nil {
		ws.sendError(err.Error())
		return
	}
	ws.send(outgoingMessage{Type: "analysis", Data: result, Timestamp: time.Now().Unix()})
}
