package competitions

import (
	"log"
	"net/http"

	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// hub is set by RegisterRoutes and shared by all websocket connections
var hub *realtime.Hub

// CompetitionWebSocket handles WebSocket connections for a specific competition
func CompetitionWebSocket(c *gin.Context) {
	competitionID := c.Param("id")

	if !services.CompetitionExists(competitionID) {
		c.JSON(404, gin.H{"error": ErrCompetitionNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	hub.RegisterClient(competitionID, conn)
	defer func() {
		hub.UnregisterClient(competitionID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
