package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// catalogEvent is broadcast to connected clients after a successful admin
// mutation.
type catalogEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// eventHub fans catalog change notifications out to websocket clients.
type eventHub struct {
	mutex     sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

func newEventHub() *eventHub {
	hub := &eventHub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // Buffered channel to prevent blocking
	}
	go hub.run()
	return hub
}

func (h *eventHub) run() {
	for message := range h.broadcast {
		h.mutex.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mutex.Unlock()
	}
}

// publish never blocks the request that triggered the event; when the
// channel is full the event is dropped.
func (h *eventHub) publish(event catalogEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode catalog event: %v", err)
		return
	}
	select {
	case h.broadcast <- message:
	default:
		log.Println("Event channel full, dropping catalog event")
	}
}

func (h *eventHub) handler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		h.mutex.Lock()
		h.clients[conn] = true
		h.mutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				h.mutex.Lock()
				delete(h.clients, conn)
				h.mutex.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})
}
