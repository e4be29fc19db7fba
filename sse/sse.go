// Package sse fans snapshot updates out to connected dashboard clients.
package sse

import (
	"sync"

	"github.com/Zoh007/WealthScore/logger"
	"go.uber.org/zap"
)

type ClientStream struct {
	Messages chan string
	Done     chan struct{}
}

var (
	connections = make(map[string]*ClientStream)
	mu          sync.RWMutex
)

// Register creates a stream for the given client id, replacing any previous
// stream under the same id.
func Register(clientID string) *ClientStream {
	stream := &ClientStream{
		Messages: make(chan string, 100),
		Done:     make(chan struct{}),
	}
	mu.Lock()
	connections[clientID] = stream
	mu.Unlock()
	logger.Get().Debug("sse client registered", zap.String("client_id", clientID))
	return stream
}

// Unregister removes a client's stream.
func Unregister(clientID string) {
	mu.Lock()
	delete(connections, clientID)
	mu.Unlock()
	logger.Get().Debug("sse client unregistered", zap.String("client_id", clientID))
}

// Broadcast sends a payload to every connected client. Sends never block; a
// client with a full buffer misses the update and catches up on the next one.
func Broadcast(payload string) {
	mu.RLock()
	defer mu.RUnlock()
	for clientID, stream := range connections {
		select {
		case stream.Messages <- payload:
		default:
			logger.Get().Warn("sse client buffer full, dropping update",
				zap.String("client_id", clientID))
		}
	}
}

// ClientCount reports the number of connected clients.
func ClientCount() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(connections)
}
