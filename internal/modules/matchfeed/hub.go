package matchfeed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sportfy/internal/domain"
)

// MatchEvent is pushed to every connected client when an open-match booking
// changes.
type MatchEvent struct {
	Event        string    `json:"event"`
	BookingID    int64     `json:"booking_id"`
	CourtID      int64     `json:"court_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	TeamName     string    `json:"team_name,omitempty"`
	FindOpponent bool      `json:"find_opponent"`
}

// Hub fans match events out to subscribed websocket connections. Writes are
// best-effort: a failing connection is dropped, never retried.
type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// NotifyMatchChanged implements the notifier interface consumed by the
// booking and payment services.
func (h *Hub) NotifyMatchChanged(b *domain.Booking, event string) {
	h.Broadcast(MatchEvent{
		Event:        event,
		BookingID:    b.ID,
		CourtID:      b.CourtID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		TeamName:     b.TeamName,
		FindOpponent: b.FindOpponent,
	})
}

func (h *Hub) Broadcast(ev MatchEvent) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
