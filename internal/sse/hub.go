// Package sse streams simulation progress to browsers as server-sent events.
package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected listener.
type Client struct {
	ID     string
	Events chan Event
	filter map[string]bool // nil means every type
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans broadcast events out to connected clients. Slow clients miss
// events rather than stall the hub.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	broadcast chan Event
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, client := range h.clients {
			close(client.Events)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case ev := <-h.broadcast:
			h.deliver(ev)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.wants(ev.Type) {
			continue
		}
		select {
		case client.Events <- ev:
		default:
		}
	}
}

// Register adds a client that receives eventTypes, or everything when empty.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	return client
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for every interested client. It never blocks.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	select {
	case h.broadcast <- ev:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders ev in the text/event-stream wire format.
func FormatSSEMessage(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data)), nil
}
