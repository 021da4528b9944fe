// Package reload pushes rebuild notifications to open browser tabs while the
// site is being served in development.
package reload

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MessageReload tells a page to reload itself.
const MessageReload = "reload"

const (
	writeWait  = 10 * time.Second
	sendBuffer = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan string
}

// Hub tracks connected pages and fans messages out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	logger  *log.Logger
}

// NewHub creates an empty hub. A nil logger uses the default logger.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{clients: make(map[string]*client), logger: logger}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the page goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("reload: websocket upgrade", "err", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan string, sendBuffer)}
	h.register(c)
	h.logger.Debug("reload: client connected", "id", c.id, "clients", h.Count())

	go h.writeLoop(c)

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("reload: websocket read", "id", c.id, "err", err)
			}
			break
		}
	}

	h.unregister(c)
	conn.Close()
	h.logger.Debug("reload: client disconnected", "id", c.id, "clients", h.Count())
}

func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			h.logger.Debug("reload: websocket write", "id", c.id, "err", err)
			c.conn.Close()
			return
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
}

// Broadcast queues msg for every connected page and returns how many
// accepted it. Pages with a full queue are skipped.
func (h *Hub) Broadcast(msg string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, c := range h.clients {
		select {
		case c.send <- msg:
			sent++
		default:
			h.logger.Warn("reload: client queue full", "id", c.id)
		}
	}
	return sent
}

// Count returns the number of connected pages.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every page.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
		c.conn.Close()
	}
}
