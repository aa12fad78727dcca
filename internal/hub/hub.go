package hub

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"teamhub/internal/model"
)

// Client is one live websocket peer.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  atomic.Bool

	UserID   uuid.UUID
	Username string
	Role     model.Role
}

// NewClient wraps an upgraded connection with its authenticated identity.
func NewClient(conn *websocket.Conn, user *model.User) *Client {
	return &Client{
		conn:     conn,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// send writes one text frame. Writes are serialized per connection since
// both the relay path and the REST broadcast path may target the same peer.
func (c *Client) send(payload []byte) error {
	if c.closed.Load() {
		return nil
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub maintains the set of live peers and relays messages between them.
type Hub struct {
	mu         sync.Mutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

// New creates an empty hub. Run must be started before clients connect.
func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes registration and deregistration events.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("chat client connected: %s", client.Username)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closed.Store(true)
				client.conn.Close()
			}
			h.mu.Unlock()
			log.Printf("chat client disconnected: %s", client.Username)
		}
	}
}

// Register adds a peer to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a peer and closes its connection.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// snapshot copies the peer set so broadcasting never iterates the live map.
// Peers registered or removed mid-broadcast simply miss or keep this one
// delivery; that is within the best-effort contract.
func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// Broadcast relays payload to every open peer except origin. Delivery is
// at-most-once: write failures are logged and skipped, never retried.
func (h *Hub) Broadcast(origin *Client, payload []byte) {
	for _, client := range h.snapshot() {
		if client == origin {
			continue
		}
		if err := client.send(payload); err != nil {
			log.Printf("websocket write to %s: %v", client.Username, err)
		}
	}
}

// BroadcastExcept relays payload to every open peer not belonging to the
// given user. Used when the originating action arrived over HTTP rather
// than the socket itself.
func (h *Hub) BroadcastExcept(userID uuid.UUID, payload []byte) {
	for _, client := range h.snapshot() {
		if client.UserID == userID {
			continue
		}
		if err := client.send(payload); err != nil {
			log.Printf("websocket write to %s: %v", client.Username, err)
		}
	}
}

// inbound is the minimal envelope a socket frame must satisfy.
type inbound struct {
	Type string `json:"type"`
}

// ReadLoop consumes frames from the client until the connection drops,
// relaying valid envelopes to the other peers. Malformed payloads are
// dropped and logged; they never close the connection.
func (h *Hub) ReadLoop(client *Client) {
	defer h.Unregister(client)
	for {
		_, payload, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var env inbound
		if err := json.Unmarshal(payload, &env); err != nil || env.Type == "" {
			log.Printf("dropping malformed websocket payload from %s", client.Username)
			continue
		}

		h.Broadcast(client, payload)
	}
}
