package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleStream serves snapshot updates over server-sent events. The current
// snapshot is sent immediately on connect; subsequent poll ticks arrive as
// they happen.
func HandleStream(c *gin.Context) {
	clientID := uuid.NewString()
	stream := sse.Register(clientID)
	defer sse.Unregister(clientID)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "Streaming unsupported!")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	if Snapshots != nil {
		if payload, err := json.Marshal(Snapshots.Snapshot()); err == nil {
			c.Writer.Write([]byte("data: " + string(payload) + "\n\n"))
			flusher.Flush()
		}
	}

	logger.Get().Info("sse connection established", zap.String("client_id", clientID))

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-stream.Messages:
			if !ok {
				return false
			}
			c.Writer.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
			return true
		case <-c.Request.Context().Done():
			return false
		case <-stream.Done:
			return false
		}
	})
}
