package analyze

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Duggu05-coder/Lumos/internal/logging"
)

const writeTimeout = 10 * time.Second

// liveConn wraps a websocket connection; gorilla allows one concurrent writer.
type liveConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *liveConn) send(msg outgoingMessage) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(msg); err != nil {
		logger := logging.Component("analyze")
		logger.Debug().Err(err).Str("type", msg.Type).Msg("websocket write failed")
	}
}

func (c *liveConn) sendError(message string) {
	c.send(outgoingMessage{
		Type:      "error",
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().Unix(),
	})
}

// pingLoop 定期发送ping消息
func (c *liveConn) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
