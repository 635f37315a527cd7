package realtime

import (
	"encoding/json"

	"velvet/pkg/logger"

	"github.com/gorilla/websocket"
)

type EventKind string

const (
	EventMessage    EventKind = "message"
	EventStudioChat EventKind = "studio_chat"
	EventStats      EventKind = "stats"
)

// Event is one change notification. Targets lists the user ids the event is
// delivered to; delivery is at-least-once with no ordering guarantee, so
// payloads carry record ids and receivers reconcile by id.
type Event struct {
	Kind    EventKind   `json:"kind"`
	Targets []string    `json:"-"`
	Payload interface{} `json:"payload"`
}

type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
}

type Hub struct {
	clients map[string]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Event

	logger *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Event, 64),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true

		case client := <-h.Unregister:
			if conns, ok := h.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.Send)
					if len(conns) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}

		case event := <-h.Broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to marshal event: %v", err)
				continue
			}
			for _, target := range event.Targets {
				for client := range h.clients[target] {
					select {
					case client.Send <- data:
					default:
						// Slow consumer, drop the connection.
						close(client.Send)
						delete(h.clients[target], client)
					}
				}
			}
		}
	}
}

func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
