package operator

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/middleware"
	"parkpulse-analytics/pkg/websocket"
)

var feedHub *websocket.Hub

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is enforced by the CORS middleware; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// InitStream hands the shared hub to the stream handler.
func InitStream(hub *websocket.Hub) {
	feedHub = hub
}

// StreamDashboard upgrades the connection and subscribes it to the
// tenant's live dashboard feed.
func StreamDashboard(c *gin.Context) {
	var params inout.GetOperatorDashboardReq
	if !middleware.BindQuery(c, &params) {
		return
	}
	if feedHub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dashboard feed not running"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &websocket.Client{
		Hub:          feedHub,
		Conn:         conn,
		Send:         make(chan []byte, 16),
		Topic:        params.TenantID,
		ConnectionID: uuid.New().String(),
	}
	feedHub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
