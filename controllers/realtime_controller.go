package controllers

import (
	"net/http"
	"time"

	"github.com/arinkulshi/diet-recommendation-tool/services"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT    *services.RealtimeHub
	Users *services.UserService
}

func NewRealtimeController(rt *services.RealtimeHub, users *services.UserService) *RealtimeController {
	return &RealtimeController{RT: rt, Users: users}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // CORS policy is enforced by the router
}

// GET /users/:id/favorites/stream
func (rc *RealtimeController) FavoritesWS(c *gin.Context) {
	uid, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	exists, err := rc.Users.Exists(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Failed to open favorites stream")
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	// keep idle connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.WritePing(); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
