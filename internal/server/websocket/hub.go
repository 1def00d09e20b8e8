// Package websocket tracks the portal's WebSocket clients and fans
// messages out to them.
package websocket

import (
	"context"
	"sync"

	"github.com/levantva/crewcenter/internal/logging"
)

// Hub maintains the set of active clients and broadcasts messages.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	log logging.Logger
	mu  sync.RWMutex
}

func NewHub(log logging.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.With("module", "websocket"),
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing every
// client still connected.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.mu.Lock()
		for c := range h.clients {
			c.close()
			delete(h.clients, c)
		}
		h.mu.Unlock()
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Info(ctx, "client connected", "total", n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.close()
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Info(ctx, "client disconnected", "total", n)

		case message := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				if !c.Enqueue(message) {
					h.log.Warn(ctx, "client send buffer full, closing")
					c.close()
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues message for every client. It drops the message when
// the queue is full.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn(context.Background(), "broadcast channel full, dropping message")
	}
}

// BroadcastMessage encodes m and broadcasts it.
func (h *Hub) BroadcastMessage(m Message) error {
	b, err := m.JSON()
	if err != nil {
		return err
	}
	h.Broadcast(b)
	return nil
}

// Register adds a client. It is a no-op once the hub has stopped.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.close()
	}
}

// Unregister removes a client and closes its queue.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Client is one connection's outbound queue.
type Client struct {
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient() *Client {
	return &Client{send: make(chan []byte, 256)}
}

// Send returns the queue the writer drains. It is closed when the client
// is dropped.
func (c *Client) Send() <-chan []byte {
	return c.send
}

// Enqueue queues message without blocking. It reports false when the
// queue is full or closed.
func (c *Client) Enqueue(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// EnqueueMessage encodes m and queues it.
func (c *Client) EnqueueMessage(m Message) bool {
	b, err := m.JSON()
	if err != nil {
		return false
	}
	return c.Enqueue(b)
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
