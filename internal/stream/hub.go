// internal/stream/hub.go
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientBuffer = 8
	writeTimeout = 2 * time.Second
)

// Hub broadcasts frames to websocket clients. Publish never blocks the
// simulation: a client that falls behind loses frames.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. A nil logger falls back to log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Publish queues frame for every connected client.
func (h *Hub) Publish(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Printf("stream: failed to marshal frame %d: %v", frame.Tick, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Клиент не успевает, кадр пропускаем.
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("stream: upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop drains client messages until the connection drops.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Close disconnects every client and stops accepting frames.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
