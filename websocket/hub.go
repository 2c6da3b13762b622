// Package websocket pushes academy events (WP gains, badge unlocks,
// nexus activity) to connected browsers.
package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"waniyilo/models"
)

// Client represents one connected browser session.
type Client struct {
	Conn      *websocket.Conn
	Matricule string
	writeMu   sync.Mutex
}

// SafeWriteJSON serializes concurrent writes to the connection.
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Hub broadcasts academy events to every connected client. It is
// constructed at startup and shared by the handlers that emit events.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{clients: map[*Client]bool{}}
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("Academy client registered. Total clients: %d", len(h.clients))
}

// Unregister removes a client and closes its connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[client] {
		return
	}
	delete(h.clients, client)
	client.Conn.Close()
	log.Printf("Academy client unregistered. Total clients: %d", len(h.clients))
}

// Broadcast sends an event to all connected clients. Clients whose
// write fails are dropped.
func (h *Hub) Broadcast(event models.AcademyEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting academy event to client: %v", err)
			go h.Unregister(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
