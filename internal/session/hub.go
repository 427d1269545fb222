// Package session fans freshly appended live-code events out to
// WebSocket subscribers. Rooms are keyed by interview id; the shared
// editor state itself lives in the append-only event log, so rooms carry
// no document state of their own.
package session

import (
	"sync"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

// Hub manages all active live-code rooms on this instance.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub { return &Hub{rooms: make(map[string]map[*Client]struct{})} }

func (h *Hub) Join(interviewID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[interviewID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[interviewID] = room
	}
	room[c] = struct{}{}
}

// Leave removes the client and returns how many subscribers remain.
func (h *Hub) Leave(interviewID string, c *Client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[interviewID]
	if !ok {
		return 0
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, interviewID)
	}
	return len(room)
}

func (h *Hub) SubscriberCount(interviewID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[interviewID])
}

// Broadcast pushes the event to every subscriber of its interview.
func (h *Hub) Broadcast(event models.LiveCodeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[event.InterviewID] {
		c.Send(event)
	}
}
