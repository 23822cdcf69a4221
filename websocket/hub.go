package websocket

import (
	"log"
	"sync"
)

// Hub is the connection registry: it maps each rental id to the set of live
// clients currently admitted to that rental's chat room. A room entry exists
// only while it has at least one client; empty rooms are deleted immediately.
// One mutex guards all room state.
type Hub struct {
	// Rooms mapping (rentalID -> clients)
	rooms map[uint]map[*Client]bool

	mu sync.Mutex
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[uint]map[*Client]bool),
	}
}

// JoinRoom admits a client into a rental's room, creating the room if absent
func (h *Hub) JoinRoom(client *Client, rentalID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[rentalID]; !ok {
		h.rooms[rentalID] = make(map[*Client]bool)
	}
	h.rooms[rentalID][client] = true
	log.Printf("client joined rental %d chat, connections in room: %d", rentalID, len(h.rooms[rentalID]))
}

// LeaveRoom removes a client from a rental's room. It is idempotent: leaving
// a room the client is not in is a no-op. The client's send channel is closed
// here, exactly once, so the write pump shuts down cleanly.
func (h *Hub) LeaveRoom(client *Client, rentalID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[rentalID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, rentalID)
	}
}

// BroadcastToRoom sends a message to every client in a rental's room. A client
// whose send buffer is full or closed is evicted from the room as a side
// effect; delivery to the remaining clients continues. Broadcasting to a
// rental with no room is a no-op.
func (h *Hub) BroadcastToRoom(rentalID uint, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[rentalID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- message:
		default:
			delete(clients, client)
			close(client.send)
			log.Printf("evicted stalled connection from rental %d chat", rentalID)
		}
	}

	if len(clients) == 0 {
		delete(h.rooms, rentalID)
	}
}

// roomSize returns the number of clients currently in a rental's room
func (h *Hub) roomSize(rentalID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[rentalID])
}

// Global hub instance
var hub *Hub

// InitHub initializes the global hub
func InitHub() {
	hub = NewHub()
}
