package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"portfolia/pkg/logger"
)

// Event is one content-change notification: Type names the collection,
// Data carries the full replacement snapshot.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client is one connected render surface. Surfaces are anonymous; the hub
// only pushes, never authenticates.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Manager fans content-change events out to every connected surface.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Content listener connected (%d active)", m.count())

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Content listener disconnected (%d active)", m.count())

			case message := <-m.broadcast:
				m.mutex.Lock()
				for client := range m.clients {
					select {
					case client.Send <- message:
					default:
						// Slow consumer: drop it rather than stall the hub.
						close(client.Send)
						delete(m.clients, client)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Publish satisfies content.Publisher: marshal the event and broadcast it.
func (m *Manager) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Event{Type: event, Data: data})
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", event, err)
		return
	}

	select {
	case m.broadcast <- payload:
	default:
		logger.Warn("Broadcast queue full; dropping %s event", event)
	}
}

func (m *Manager) count() int {
	return len(m.clients)
}

// ReadPump consumes (and discards) client frames until the connection
// closes; the content channel is push-only.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Content listener read error: %v", err)
			}
			return
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
