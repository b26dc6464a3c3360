package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection belonging to a user.
type Client struct {
	UserID uint
	Conn   *websocket.Conn
}

// Hub fans dashboard events out to each user's open connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*Client]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
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

// Broadcast sends an event to every connection the user has open.
func (h *Hub) Broadcast(userID uint, kind string, payload any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "data": payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
