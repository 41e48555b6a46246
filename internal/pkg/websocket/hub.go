package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/models/dto"
)

// Hub maintains the set of active clients and broadcasts chat messages
// to them. There is a single organization-wide room.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Channel for messages to fan out
	broadcast chan *Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// Message is the frame sent over WebSocket connections
type Message struct {
	// Type of message: currently always "chat"
	Type string `json:"type"`

	// The persisted chat message
	Payload dto.ChatMessageResponse `json:"payload"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("userID", client.userID).
			Str("addr", client.conn.RemoteAddr().String()).
			Msg("Client unregistered")
	}
}

// broadcastMessage fans a message out to every connected client
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("Failed to marshal message for broadcast")
		return
	}

	// Collect slow clients while holding the read lock; dropping them
	// needs the write lock, so it happens afterwards
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- data:
			// Message sent successfully
		default:
			// Client's send buffer is full, they might be slow or
			// disconnected
			slow = append(slow, client)
		}
	}
	count := len(h.clients)
	h.mu.RUnlock()

	for _, client := range slow {
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Int("clientCount", count).
		Msg("Message broadcasted")
}

// Broadcast sends a chat message to all connected clients
func (h *Hub) Broadcast(payload dto.ChatMessageResponse) {
	h.broadcast <- &Message{Type: "chat", Payload: payload}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
