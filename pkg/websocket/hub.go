package websocket

import (
	"log"
	"sync"
)

// Client - ulangan dashboard sessiyasi
type Client struct {
	ID      string
	Channel string // rol kanali: admin, master, user
	UserID  string
	Send    chan []byte
	Hub     *Hub
	Conn    *Connection
}

// Hub - faol clientlarni saqlaydi va xabarlarni tarqatadi
type Hub struct {
	// Rol kanali bo'yicha clientlar
	clients map[string]map[*Client]bool

	broadcast  chan *BroadcastMessage
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// BroadcastMessage - kanalga yuboriladigan xabar
type BroadcastMessage struct {
	Channel string      `json:"-"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// GlobalHub - global hub instansi
var GlobalHub *Hub

// NewHub - yangi hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *BroadcastMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run - hub asosiy sikli
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Channel] == nil {
				h.clients[client.Channel] = make(map[*Client]bool)
			}
			h.clients[client.Channel][client] = true
			h.mu.Unlock()
			log.Printf("🔌 WebSocket: client %s kanaliga ulandi (jami: %d)", client.Channel, h.ClientCount(client.Channel))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.Channel]; ok {
				if _, ok := h.clients[client.Channel][client]; ok {
					delete(h.clients[client.Channel], client)
					close(client.Send)
					if len(h.clients[client.Channel]) == 0 {
						delete(h.clients, client.Channel)
					}
				}
			}
			h.mu.Unlock()
			log.Printf("🔌 WebSocket: client %s kanalidan uzildi", client.Channel)

		case message := <-h.broadcast:
			h.mu.RLock()
			clients := h.clients[message.Channel]
			h.mu.RUnlock()

			if clients != nil {
				for client := range clients {
					select {
					case client.Send <- message.ToJSON():
					default:
						h.mu.Lock()
						close(client.Send)
						delete(h.clients[message.Channel], client)
						h.mu.Unlock()
					}
				}
				log.Printf("📡 WebSocket: '%s' xabari %s kanalidagi %d clientga yuborildi", message.Type, message.Channel, len(clients))
			}
		}
	}
}

// Broadcast - kanalga xabar yuborish
func (h *Hub) Broadcast(channel, messageType string, payload interface{}) {
	h.broadcast <- &BroadcastMessage{
		Channel: channel,
		Type:    messageType,
		Payload: payload,
	}
}

// BroadcastOrderUpdate - status o'zgarishini barcha rol kanallariga yuborish.
// Ochiq dashboardlar to'liq qayta yuklashsiz yangilanadi.
func (h *Hub) BroadcastOrderUpdate(payload OrderUpdatePayload) {
	for _, channel := range []string{"admin", "master", "user"} {
		h.Broadcast(channel, MessageTypeOrderUpdate, payload)
	}
}

// ClientCount - kanaldagi clientlar soni
func (h *Hub) ClientCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[channel])
}

// InitGlobalHub - global hubni ishga tushirish
func InitGlobalHub() {
	GlobalHub = NewHub()
	go GlobalHub.Run()
	log.Println("✅ WebSocket Hub ishga tushdi!")
}
