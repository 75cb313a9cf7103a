package server

import (
	"encoding/json"
	"sync"

	"hyperchess/engine"
)

// Hub fans engine updates out to every connected websocket client.
type Hub struct {
	mu        sync.Mutex
	clients   map[*Client]struct{}
	broadcast chan engine.Update
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan engine.Update, 16),
	}
}

// Run fans out until done closes. Start it once, in its own goroutine.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case u := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				client.sendJSON(wsMessage{Type: "update", Payload: mustMarshal(u)})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an update for fan-out, dropping it when the hub is
// saturated. Clients resynchronize from /api/board.
func (h *Hub) Broadcast(u engine.Update) {
	select {
	case h.broadcast <- u:
	default:
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

// sendJSON never blocks; a client that stops draining loses messages.
func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
