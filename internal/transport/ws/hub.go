package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Hub owns the user → connected-sessions registry and routes events.
// A user with several open tabs has several clients in their set; all
// of them receive every event addressed to that user.
type Hub struct {
	// clients maps userID → set of that user's connections.
	clients map[uuid.UUID]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	publish    chan *userMsg
}

type userMsg struct {
	userID uuid.UUID
	data   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		publish:    make(chan *userMsg, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			log.Printf("ws hub: user %s connected (%d sessions)", client.userID, len(set))

		case client := <-h.unregister:
			if set, ok := h.clients[client.userID]; ok {
				if _, ok := set[client]; ok {
					h.drop(client)
					log.Printf("ws hub: user %s disconnected (%d sessions)", client.userID, len(set))
				}
			}

		case msg := <-h.publish:
			for client := range h.clients[msg.userID] {
				select {
				case client.send <- msg.data:
				default:
					// Client buffer full - disconnect
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from its user's set; only the hub loop may
// call this. Teardown is signalled through done alone: send stays
// open, so the client's own goroutines can never hit a closed channel
// while handling a late incoming event.
func (h *Hub) drop(client *Client) {
	set := h.clients[client.userID]
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.done)
}

// Publish sends an event to every currently-connected session of a
// user. Best-effort: nobody connected means the event is gone.
func (h *Hub) Publish(userID uuid.UUID, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.publish <- &userMsg{userID: userID, data: data}
}
