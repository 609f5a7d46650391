// Package relay bridges the in-process event bus to out-of-process UI
// consumers over websockets. It is broadcast-only telemetry: remote
// renderers observe engine events through the same catalog in-process
// subscribers do, and never reach back into engine state.
package relay

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/codequest/quest-engine/events"
)

// Frame is one relayed event as sent on the wire
type Frame struct {
	Seq     uint64    `json:"seq"`
	Event   string    `json:"event"`
	Payload any       `json:"payload,omitempty"`
	Time    time.Time `json:"time"`
}

// clientQueueSize bounds the per-client send buffer; a client that falls
// this far behind is evicted rather than stalling the game loop.
const clientQueueSize = 64

type client struct {
	conn *websocket.Conn
	send chan Frame
}

// Relay fans engine events out to connected websocket clients
type Relay struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	seq     uint64
	log     zerolog.Logger

	upgrader websocket.Upgrader
	cancels  []func()
}

// New creates a relay subscribed to the full event catalog on bus
func New(bus *events.Bus, log zerolog.Logger) *Relay {
	r := &Relay{
		clients: make(map[*client]struct{}),
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, t := range events.Types() {
		eventType := t
		cancel := bus.Subscribe(eventType, func(ev events.Event) {
			r.broadcast(eventType, ev.Payload)
		})
		r.cancels = append(r.cancels, cancel)
	}
	return r
}

// ServeHTTP upgrades the request and streams frames until the client
// disconnects or falls too far behind.
func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		conn: conn,
		send: make(chan Frame, clientQueueSize),
	}
	r.mu.Lock()
	r.clients[c] = struct{}{}
	count := len(r.clients)
	r.mu.Unlock()
	r.log.Info().Int("clients", count).Msg("relay client connected")

	go r.writeLoop(c)
	go r.readLoop(c)
}

// ClientCount returns the number of connected clients
func (r *Relay) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close detaches from the bus and disconnects every client
func (r *Relay) Close() {
	for _, cancel := range r.cancels {
		cancel()
	}
	r.cancels = nil

	r.mu.Lock()
	for c := range r.clients {
		close(c.send)
		delete(r.clients, c)
	}
	r.mu.Unlock()
}

func (r *Relay) broadcast(t events.Type, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	frame := Frame{
		Seq:     r.seq,
		Event:   t.String(),
		Payload: payload,
		Time:    time.Now(),
	}
	for c := range r.clients {
		select {
		case c.send <- frame:
		default:
			// Client is not draining its queue; evict it.
			close(c.send)
			delete(r.clients, c)
			r.log.Warn().Msg("evicting slow relay client")
		}
	}
}

func (r *Relay) writeLoop(c *client) {
	defer c.conn.Close()
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.conn.WriteJSON(frame); err != nil {
			r.drop(c)
			return
		}
	}
}

// readLoop discards inbound messages; the relay is one-way. Reading is
// still required so close frames and connection errors are noticed.
func (r *Relay) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			r.drop(c)
			return
		}
	}
}

func (r *Relay) drop(c *client) {
	r.mu.Lock()
	if _, ok := r.clients[c]; ok {
		close(c.send)
		delete(r.clients, c)
	}
	r.mu.Unlock()
	c.conn.Close()
}
