// Package realtime pushes row-insert notifications and admin presence to
// connected back-office sockets. Delivery is best effort; clients refetch.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"travellounge/internal/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event types.
const (
	EventBookingCreated  = "booking.created"
	EventContactReceived = "contact.received"
	EventReviewSubmitted = "review.submitted"
	EventPresence        = "presence"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Event is the JSON frame sent to clients.
type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Presence is the payload of EventPresence.
type Presence struct {
	Admins int `json:"admins"`
}

// Publisher is what services use to emit events.
type Publisher interface {
	Publish(e Event)
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	userID int64
}

// Hub fans events out to every connected client.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan Event

	mu      sync.RWMutex
	clients map[*client]struct{}

	upgrader websocket.Upgrader
}

// NewHub builds a hub that accepts sockets from the given origins; an empty
// list accepts any origin.
func NewHub(allowedOrigins []string) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Event, 64),
		clients:    map[*client]struct{}{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed[origin]
			},
		},
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			h.fanout(Event{Type: EventPresence, Payload: Presence{Admins: n}, At: time.Now().UTC()})
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.fanout(Event{Type: EventPresence, Payload: Presence{Admins: n}, At: time.Now().UTC()})
		case e := <-h.broadcast:
			h.fanout(e)
		}
	}
}

// Publish queues e for delivery. It never blocks; events are dropped when the
// queue is full.
func (h *Hub) Publish(e Event) {
	if h == nil {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	select {
	case h.broadcast <- e:
	default:
		utils.L().Warn("realtime queue full, dropping event", zap.String("type", e.Type))
	}
}

// Connected returns the number of open sockets.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) fanout(e Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		utils.L().Error("realtime marshal failed", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// slow consumer
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Serve upgrades the request and pumps events until the socket closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID int64) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer), userID: userID}

	select {
	case h.register <- c:
	case <-r.Context().Done():
		_ = conn.Close()
		return r.Context().Err()
	}

	go c.writePump()
	c.readPump(h)
	return nil
}

// readPump discards inbound frames; it exists to process pings and detect close.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-time.After(writeWait):
		}
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Multi fans one Publish out to several publishers.
type Multi []Publisher

func (m Multi) Publish(e Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(e)
		}
	}
}
