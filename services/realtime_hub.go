package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex // gorilla allows one concurrent writer per conn
}

// Send serializes writes to the connection; the hub's broadcasts and the
// controller's keep-alive pings share it.
func (c *WSClient) Send(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub pushes reconciliation summaries to the owning user's open
// browser tabs so the pantry view refreshes right after "mark consumed".
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type realtimeEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// BroadcastConsumption fans a completed reconciliation out to every open
// connection of one user. Write errors are ignored; dead connections clean
// themselves up through the controller's read loop.
func (h *RealtimeHub) BroadcastConsumption(userID uint, payload any) {
	msg, _ := json.Marshal(realtimeEvent{Type: "consumption", Data: payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
