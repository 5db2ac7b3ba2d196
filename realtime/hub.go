// Package realtime carries the websocket ping demo: every message a client
// sends is echoed to all connected clients.
package realtime

import (
	"log/slog"
	"sync"
)

// TextMessage is the websocket text frame type.
const TextMessage = 1

// Conn is the slice of a websocket connection the hub needs. Tests plug in
// fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub tracks connected clients and fans messages out to them.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]struct{}
	log   *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{conns: make(map[Conn]struct{}), log: log}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

// Unregister removes a connection from the broadcast set.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Broadcast sends message to every connected client, sender included.
// Connections that fail to write are dropped.
func (h *Hub) Broadcast(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		if err := c.WriteMessage(TextMessage, []byte(message)); err != nil {
			h.log.Error("websocket write failed, dropping client", "err", err)
			delete(h.conns, c)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
