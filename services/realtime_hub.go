package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds every socket write; a subscriber that stops reading is
// dropped once it is exceeded.
var writeWait = 10 * time.Second

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

func (c *WSClient) write(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// WritePing sends a ping frame; safe to call concurrently with broadcasts.
func (c *WSClient) WritePing() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(websocket.PingMessage, nil)
}

// RealtimeHub fans favorite events out to every open socket of a user.
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

// Subscribers returns the number of open sockets for userID.
func (h *RealtimeHub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: marshal payload for user %d: %v", userID, err)
		return
	}
	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(msg); err != nil {
			h.Unregister(c)
		}
	}
}
