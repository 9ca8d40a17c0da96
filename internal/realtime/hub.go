// Package realtime pushes gold-rate updates and stock alerts to a tenant's
// connected websocket clients.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Client is one websocket connection bound to a tenant.
type Client struct {
	hub      *Hub
	tenantID uuid.UUID
	conn     *websocket.Conn
	send     chan []byte
}

type envelope struct {
	tenantID uuid.UUID
	payload  []byte
}

// Hub tracks clients per tenant and fans events out to them.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	log        logrus.FieldLogger
}

// NewHub creates a Hub. Call Run in its own goroutine before serving clients.
func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		broadcast:  make(chan envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.WithField("component", "realtime"),
	}
}

var _ port.Broadcaster = (*Hub)(nil)

// Run dispatches registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			h.clients = map[uuid.UUID]map[*Client]struct{}{}
			return
		case c := <-h.register:
			set, ok := h.clients[c.tenantID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.tenantID] = set
			}
			set[c] = struct{}{}
			h.log.WithField("tenant_id", c.tenantID).Debug("websocket client connected")
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			for c := range h.clients[msg.tenantID] {
				select {
				case c.send <- msg.payload:
				default:
					// slow consumer
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	set := h.clients[c.tenantID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.tenantID)
	}
}

// Stop ends Run and closes every client's send channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Publish queues ev for every client of tenantID. It never blocks; events
// are dropped when the hub is saturated or stopped.
func (h *Hub) Publish(tenantID uuid.UUID, ev port.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).WithField("type", ev.Type).Error("marshalling realtime event")
		return
	}
	select {
	case <-h.done:
	case h.broadcast <- envelope{tenantID: tenantID, payload: payload}:
	default:
		h.log.WithField("type", ev.Type).Warn("realtime broadcast buffer full, event dropped")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// SetAllowedOrigins restricts websocket upgrades to the configured CORS
// origins. An empty list keeps gorilla's same-origin check.
func SetAllowedOrigins(origins []string) {
	if len(origins) == 0 {
		upgrader.CheckOrigin = nil
		return
	}
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}

// Serve upgrades the request and attaches the connection to tenantID.
// Authentication happens before Serve is called.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &Client{hub: h, tenantID: tenantID, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return nil
	}
	go c.writePump()
	go c.readPump()
	return nil
}

func (c *Client) writePump() {
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

// readPump only drains control frames; clients never send application data.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Debug("websocket read")
			}
			return
		}
	}
}
