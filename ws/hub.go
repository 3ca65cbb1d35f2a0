package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Frame is the control message clients send to join or leave an order
// channel.
type Frame struct {
	Action  string `json:"action"` // "subscribe" | "unsubscribe"
	Channel string `json:"channel"`
	OrderID string `json:"orderId"`
}

// StatusUpdate is the push message broadcast to an order's subscribers.
type StatusUpdate struct {
	Type      string    `json:"type"` // always "order_status"
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hub fans order-status updates out to websocket subscribers. Connections
// pick their orders with subscribe/unsubscribe frames; malformed frames are
// dropped silently.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of conns
	broadcast  chan StatusUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	conn    *websocket.Conn
	orderID string // "" on unregister means drop the conn everywhere
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.orderID] == nil {
				h.clients[sub.orderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.orderID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if sub.orderID != "" {
				delete(h.clients[sub.orderID], sub.conn)
			} else {
				for id := range h.clients {
					delete(h.clients[id], sub.conn)
				}
				sub.conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish broadcasts a status change to everyone watching the order.
func (h *Hub) Publish(orderID, status string) {
	h.broadcast <- StatusUpdate{
		Type:      "order_status",
		OrderID:   orderID,
		Status:    status,
		UpdatedAt: time.Now(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket is the gin handler for /ws/orders.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	go h.listenFrames(conn)
}

// listenFrames reads subscribe/unsubscribe frames until the connection dies.
func (h *Hub) listenFrames(conn *websocket.Conn) {
	defer func() { h.unregister <- subscription{conn: conn} }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}
		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			continue
		}
		if f.Channel != "order" || f.OrderID == "" {
			continue
		}
		switch f.Action {
		case "subscribe":
			h.register <- subscription{conn: conn, orderID: f.OrderID}
		case "unsubscribe":
			h.unregister <- subscription{conn: conn, orderID: f.OrderID}
		}
	}
}
