package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"go-enterprise-ops/internal/model"
)

// Hub fans stock-update events out to connected dashboard clients.
type Hub struct {
	clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
	}
}

// StockUpdateEvent is the wire shape pushed to subscribers after every
// ledger mutation.
type StockUpdateEvent struct {
	Type      string                `json:"type"`
	Action    string                `json:"action"`
	Quantity  int                   `json:"quantity"`
	Product   model.ProductResponse `json:"product"`
	Actor     string                `json:"actor"`
	Timestamp time.Time             `json:"timestamp"`
}

// PublishStockUpdate queues an event without blocking the mutation path; if
// the hub is saturated the event is dropped.
func (h *Hub) PublishStockUpdate(product model.ProductResponse, action string, quantity int, actor string) {
	payload, err := json.Marshal(StockUpdateEvent{
		Type:      "stock_update",
		Action:    action,
		Quantity:  quantity,
		Product:   product,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
