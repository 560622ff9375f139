package websocket

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Hozircha barcha originlarga ruxsat (productionda cheklash mumkin)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SessionCookieName - sessiya cookie nomi (handlers bilan bir xil)
const SessionCookieName = "dern_session"

// HandleWebSocket - dashboard real-time ulanishi.
// Sessiya cookie orqali aniqlanadi; client o'z roli kanaliga yoziladi.
func HandleWebSocket(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Printf("❌ WebSocket: sessiya cookie topilmadi")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		sess, err := store.Get(context.Background(), cookie.Value)
		if err != nil || !sess.Authenticated() {
			log.Printf("❌ WebSocket: yaroqsiz sessiya")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		role := sess.Role()
		if role != models.RoleAdmin && role != models.RoleMaster && role != models.RoleUser {
			log.Printf("❌ WebSocket: noma'lum rol %q", role)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade xatosi: %v", err)
			return
		}

		client := &Client{
			ID:      uuid.New().String(),
			Channel: role,
			UserID:  sess.User.ID,
			Send:    make(chan []byte, 256),
			Hub:     GlobalHub,
		}

		wsConn := NewConnection(conn, client)
		client.Conn = wsConn

		GlobalHub.register <- client

		welcomeMsg := &BroadcastMessage{
			Channel: role,
			Type:    "connected",
			Payload: map[string]interface{}{
				"message":   "WebSocket ulandi! Buyurtma yangilanishlari real-time keladi.",
				"client_id": client.ID,
				"channel":   role,
			},
		}
		client.Send <- welcomeMsg.ToJSON()

		log.Printf("✅ WebSocket: client %s ulandi (kanal: %s, user: %s)", client.ID, role, client.UserID)

		go wsConn.WritePump()
		go wsConn.ReadPump()
	}
}

// NotifyOrderUpdate - status o'zgarishini tarqatish (hub ishga tushmagan bo'lsa jim o'tadi)
func NotifyOrderUpdate(payload OrderUpdatePayload) {
	if GlobalHub != nil {
		GlobalHub.BroadcastOrderUpdate(payload)
	}
}

// NotifyOrderCreated - yangi buyurtmani admin va master kanallariga yuborish
func NotifyOrderCreated(payload OrderCreatedPayload) {
	if GlobalHub != nil {
		GlobalHub.Broadcast("admin", MessageTypeOrderCreated, payload)
		GlobalHub.Broadcast("master", MessageTypeOrderCreated, payload)
	}
}
