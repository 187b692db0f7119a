package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

type broadcast struct {
	leagueID uuid.UUID
	data     []byte
}

// Hub fans league events out to connected clients. All map access happens
// on the Run goroutine.
type Hub struct {
	leagues    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan broadcast
}

func NewHub() *Hub {
	return &Hub{
		leagues:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan broadcast, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			clients := h.leagues[client.leagueID]
			if clients == nil {
				clients = make(map[*Client]bool)
				h.leagues[client.leagueID] = clients
			}
			clients[client] = true

		case client := <-h.unregister:
			if clients, ok := h.leagues[client.leagueID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.leagues, client.leagueID)
					}
				}
			}

		case msg := <-h.events:
			for client := range h.leagues[msg.leagueID] {
				select {
				case client.send <- msg.data:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.leagues[msg.leagueID], client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Broadcast sends an event to every client watching the league. Marshal
// failures are logged and dropped; the feed is best-effort.
func (h *Hub) Broadcast(leagueID uuid.UUID, eventType EventType, payload interface{}) {
	event, err := NewEvent(eventType, payload)
	if err != nil {
		log.Printf("ERROR [ws.Broadcast] marshal payload: %v", err)
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR [ws.Broadcast] marshal event: %v", err)
		return
	}
	h.events <- broadcast{leagueID: leagueID, data: data}
}
