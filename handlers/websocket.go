package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

var (
	connMu      sync.Mutex
	connections = make(map[string]*websocket.Conn)
)

// HandleWebSocket upgrades the connection and registers it for snapshot
// pushes. A monitor goroutine holds a read deadline so stale clients drop
// off instead of leaking.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Error("failed to upgrade connection", zap.Error(err))
		return
	}

	clientID := uuid.NewString()
	connMu.Lock()
	connections[clientID] = conn
	connMu.Unlock()

	logger.Get().Info("websocket connection established",
		zap.String("client_id", clientID),
		zap.String("remote_addr", c.Request.RemoteAddr))

	if Snapshots != nil {
		if err := conn.WriteJSON(Snapshots.Snapshot()); err != nil {
			logger.Get().Error("failed to write initial snapshot", zap.Error(err))
		}
	}

	go monitorConnection(clientID, conn)
}

func monitorConnection(clientID string, conn *websocket.Conn) {
	defer func() {
		conn.Close()
		connMu.Lock()
		delete(connections, clientID)
		connMu.Unlock()
		logger.Get().Info("websocket connection closed", zap.String("client_id", clientID))
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(90 * time.Second)); err != nil {
			logger.Get().Error("error setting read deadline", zap.Error(err))
			return
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Get().Warn("websocket read error",
					zap.String("client_id", clientID), zap.Error(err))
			}
			return
		}
	}
}

// BroadcastSnapshot pushes a snapshot to every open websocket. Connections
// that fail to write are closed and dropped.
func BroadcastSnapshot(snapshot models.Snapshot) {
	connMu.Lock()
	defer connMu.Unlock()
	for clientID, conn := range connections {
		if err := conn.WriteJSON(snapshot); err != nil {
			logger.Get().Warn("dropping websocket client",
				zap.String("client_id", clientID), zap.Error(err))
			conn.Close()
			delete(connections, clientID)
		}
	}
}
