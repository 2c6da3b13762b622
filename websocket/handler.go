package websocket

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"waniyilo/stores"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades /ws/academy connections. The matricule arrives as a
// query parameter (browsers cannot set headers on websocket dials) and
// is verified against the profile store before the upgrade.
func Handler(hub *Hub, profiles stores.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		matricule := c.Query("matricule")
		if matricule == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "matricule required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		profile, err := profiles.GetByMatricule(ctx, matricule)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown matricule"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}

		client := &Client{Conn: conn, Matricule: profile.Matricule}
		hub.Register(client)
		defer hub.Unregister(client)

		welcome := map[string]interface{}{
			"type":      "connected",
			"matricule": profile.Matricule,
		}
		if err := client.SafeWriteJSON(welcome); err != nil {
			return
		}

		// Read loop exists only to detect disconnects and answer pings.
		for {
			messageType, _, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("Academy WebSocket error: %v", err)
				}
				return
			}
			if messageType == websocket.PingMessage {
				if err := conn.WriteMessage(websocket.PongMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
