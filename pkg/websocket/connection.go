package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Xabar yozish uchun berilgan vaqt
	writeWait = 10 * time.Second

	// Pong kutish vaqti
	pongWait = 60 * time.Second

	// Ping davri (pongWait dan kichik bo'lishi shart)
	pingPeriod = (pongWait * 9) / 10

	// Clientdan keladigan xabarning maksimal hajmi
	maxMessageSize = 512
)

// Connection - WebSocket ulanish o'rami
type Connection struct {
	ws     *websocket.Conn
	client *Client
}

// NewConnection - yangi ulanish
func NewConnection(ws *websocket.Conn, client *Client) *Connection {
	return &Connection{ws: ws, client: client}
}

// ReadPump - clientdan kelgan xabarlarni o'qish
func (c *Connection) ReadPump() {
	defer func() {
		c.client.Hub.unregister <- c.client
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket o'qish xatosi: %v", err)
			}
			break
		}
		// Dashboard faqat tinglaydi, kelgan xabarlar e'tiborga olinmaydi
	}
}

// WritePump - hubdan kelgan xabarlarni clientga yozish
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.client.Send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.ws.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Navbatda turgan xabarlarni qo'shib yuborish
			n := len(c.client.Send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.client.Send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ToJSON - xabarni JSON ga aylantirish
func (m *BroadcastMessage) ToJSON() []byte {
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("Xabarni marshal qilishda xatolik: %v", err)
		return []byte("{}")
	}
	return data
}

// Xabar turlari
const (
	MessageTypeOrderCreated = "order_created"
	MessageTypeOrderUpdate  = "order_update"
	MessageTypeOrderCancel  = "order_cancelled"
)

// OrderUpdatePayload - status o'zgarishi haqidagi xabar
type OrderUpdatePayload struct {
	OrderID   string `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// OrderCreatedPayload - yangi buyurtma haqidagi xabar
type OrderCreatedPayload struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	CreatedAt    string `json:"created_at"`
}
