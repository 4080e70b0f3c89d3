package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"faq-service/internal/models"

	"github.com/gofiber/websocket/v2"
)

// Client is the part of a websocket connection the hub writes to.
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// FAQHub fans FAQ change events out to connected admin dashboards.
type FAQHub struct {
	Register   chan Client
	Unregister chan Client
	broadcast  chan []byte
	clients    map[Client]bool
	done       chan struct{}
	log        *slog.Logger
}

func NewFAQHub(log *slog.Logger) *FAQHub {
	if log == nil {
		log = slog.Default()
	}
	return &FAQHub{
		Register:   make(chan Client),
		Unregister: make(chan Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[Client]bool),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves the hub until ctx is done, then closes every client.
func (h *FAQHub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			_ = c.Close()
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.Register:
			h.clients[c] = true
		case c := <-h.Unregister:
			if h.clients[c] {
				delete(h.clients, c)
				_ = c.Close()
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.log.Debug("dropping faq listener", "error", err)
					delete(h.clients, c)
					_ = c.Close()
				}
			}
		}
	}
}

// Join registers c. It reports false once the hub has stopped.
func (h *FAQHub) Join(c Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *FAQHub) Leave(c Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}

// Publish queues an event without blocking the caller; events are dropped
// when the queue is full.
func (h *FAQHub) Publish(event models.FAQEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("faq event dropped", "type", event.Type, "id", event.ID)
	}
}
