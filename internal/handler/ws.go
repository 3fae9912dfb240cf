package handler

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"

	"autokeep/api/internal/model"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development, configure for production
			return true
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	// Heartbeat interval
	pingInterval = 30 * time.Second
	// Write timeout
	writeTimeout = 10 * time.Second
)

// WSMessage represents a WebSocket message from client
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// syncFrame is a typed message pushed to dashboard clients
type syncFrame struct {
	Type      string      `json:"type"` // log, vehicle
	VehicleID uint        `json:"vehicle_id"`
	Data      interface{} `json:"data"`
}

// Client represents a WebSocket client connection
type Client struct {
	ID        string
	Conn      *websocket.Conn
	Send      chan []byte
	Hub       *WSHub
	VehicleID uint // Filter by vehicle ID (0 means all vehicles)
}

// WSHub pushes data-change events to connected dashboards so open pages
// stay in sync without polling
type WSHub struct {
	clients    map[*Client]bool
	broadcast  chan syncFrame
	register   chan *Client
	unregister chan *Client
	natsConn   *nats.Conn
	logSub     *nats.Subscription
	vehicleSub *nats.Subscription
	mu         sync.RWMutex
}

// NewWSHub creates a new WebSocket hub
func NewWSHub(nc *nats.Conn) *WSHub {
	return &WSHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan syncFrame, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		natsConn:   nc,
	}
}

// Run starts the hub's event loop
func (h *WSHub) Run() {
	logSub, err := h.natsConn.Subscribe(model.SubjectLogRecorded, func(msg *nats.Msg) {
		var event model.LogRecordedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("[WS] Failed to unmarshal log event: %v", err)
			return
		}
		h.broadcast <- syncFrame{Type: "log", VehicleID: event.VehicleID, Data: event}
	})
	if err != nil {
		log.Printf("[WS] Failed to subscribe to NATS: %v", err)
		return
	}
	h.logSub = logSub

	vehicleSub, err := h.natsConn.Subscribe(model.SubjectVehicleUpdated, func(msg *nats.Msg) {
		var event model.VehicleUpdatedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("[WS] Failed to unmarshal vehicle event: %v", err)
			return
		}
		h.broadcast <- syncFrame{Type: "vehicle", VehicleID: event.VehicleID, Data: event}
	})
	if err != nil {
		log.Printf("[WS] Failed to subscribe to NATS vehicle updates: %v", err)
		return
	}
	h.vehicleSub = vehicleSub

	log.Println("[WS] Hub started, subscribed to log and vehicle updates")

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s, total clients: %d", client.ID, len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s, total clients: %d", client.ID, len(h.clients))

		case frame := <-h.broadcast:
			data, err := json.Marshal(frame)
			if err != nil {
				log.Printf("[WS] Failed to marshal frame: %v", err)
				continue
			}

			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				if client.VehicleID == 0 || client.VehicleID == frame.VehicleID {
					clients = append(clients, client)
				}
			}
			h.mu.RUnlock()

			for _, client := range clients {
				select {
				case client.Send <- data:
				default:
					// Client send buffer is full, close connection
					h.unregister <- client
				}
			}
		}
	}
}

// Stop stops the hub and cleans up resources
func (h *WSHub) Stop() {
	if h.logSub != nil {
		h.logSub.Unsubscribe()
	}
	if h.vehicleSub != nil {
		h.vehicleSub.Unsubscribe()
	}
	h.mu.Lock()
	for client := range h.clients {
		close(client.Send)
		client.Conn.Close()
		delete(h.clients, client)
	}
	h.mu.Unlock()
}

// GetClientCount returns the number of connected clients
func (h *WSHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ReadPump handles incoming messages from the client
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(64 * 1024)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Client %s read error: %v", c.ID, err)
			}
			break
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err == nil {
			switch wsMsg.Type {
			case "subscribe":
				// Client wants events for one vehicle only
				var data struct {
					VehicleID uint `json:"vehicle_id"`
				}
				if err := json.Unmarshal(wsMsg.Data, &data); err == nil {
					c.VehicleID = data.VehicleID
					log.Printf("[WS] Client %s subscribed to vehicle %d", c.ID, c.VehicleID)
				}
			case "ping":
				select {
				case c.Send <- []byte(`{"type":"pong"}`):
				default:
				}
			}
		}
	}
}

// WritePump handles outgoing messages to the client
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Channel closed
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// WSHandler handles WebSocket connections
type WSHandler struct {
	hub *WSHub
}

// NewWSHandler creates a new WebSocket handler
func NewWSHandler(hub *WSHub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleSync upgrades the connection and streams data-change events
func (h *WSHandler) HandleSync(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Failed to upgrade connection: %v", err)
		return
	}

	clientID := c.Query("client_id")
	if clientID == "" {
		clientID = generateClientID()
	}

	// Optional: filter by vehicle ID
	var vehicleIDFilter uint
	if v := c.Query("vehicle_id"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			vehicleIDFilter = uint(parsed)
		}
	}

	client := &Client{
		ID:        clientID,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
		VehicleID: vehicleIDFilter,
	}

	client.Hub.register <- client

	go client.WritePump()
	go client.ReadPump()

	welcome := map[string]interface{}{
		"type":      "connected",
		"message":   "Connected to AutoKeep sync stream",
		"client_id": clientID,
	}
	if data, err := json.Marshal(welcome); err == nil {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// GetStats returns WebSocket hub statistics
func (h *WSHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected_clients": h.hub.GetClientCount(),
	})
}

// generateClientID generates a unique client ID
func generateClientID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of given length
func randomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
