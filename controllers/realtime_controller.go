package controllers

import (
	"net/http"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	hub *services.Hub
}

func NewRealtimeController(hub *services.Hub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /api/diet/ws
func (rc *RealtimeController) EventsWS(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.Client{UserID: userID, Conn: conn}
	rc.hub.Register(client)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.hub.Unregister(client)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.hub.Unregister(client)
			return
		}
	}
}
