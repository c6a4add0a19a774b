package realtime

import (
	"log"
	"sync"

	"api/metrics"

	"github.com/gorilla/websocket"
)

// ScoreUpdate is the payload fanned out to every client watching a
// competition when a new round is scored. The score travels as a string
// so no precision is lost on the wire
type ScoreUpdate struct {
	EntryID        string `json:"entry_id"`
	RegistrationID string `json:"registration_id"`
	CompetitionID  string `json:"competition_id"`
	Score          string `json:"score"`
	Athlete        string `json:"athlete"`
	Weapon         string `json:"weapon"`
	RoundLabel     string `json:"round_label"`
}

// Hub fans score updates out to websocket clients grouped by
// competition. Delivery is best effort: a failed write closes the client
// and drops the message, it never reaches back into the scoring path
type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*websocket.Conn]bool // competition ID -> connected clients
	broadcast chan ScoreUpdate
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]map[*websocket.Conn]bool),
		broadcast: make(chan ScoreUpdate, 64),
	}
}

// RegisterClient adds a websocket client to a specific competition
func (h *Hub) RegisterClient(competitionID string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[competitionID] == nil {
		h.clients[competitionID] = make(map[*websocket.Conn]bool)
	}
	h.clients[competitionID][conn] = true
	h.mu.Unlock()
}

// UnregisterClient removes a websocket client from a specific competition
func (h *Hub) UnregisterClient(competitionID string, conn *websocket.Conn) {
	h.mu.Lock()
	if clients, exists := h.clients[competitionID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.clients, competitionID)
		}
	}
	h.mu.Unlock()
}

// PublishScoreUpdate queues an update for every client connected to the
// update's competition
func (h *Hub) PublishScoreUpdate(update ScoreUpdate) {
	h.broadcast <- update
}

// Run delivers queued updates until the broadcast channel is closed.
// Meant to be started once, as a goroutine, from main
func (h *Hub) Run() {
	for update := range h.broadcast {
		h.mu.Lock()
		if clients, exists := h.clients[update.CompetitionID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
					metrics.BroadcastsDropped.Inc()
					continue
				}
				metrics.BroadcastsDelivered.Inc()
			}
		}
		h.mu.Unlock()
	}
}
