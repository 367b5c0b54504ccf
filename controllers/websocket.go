package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/PamelaEduardaS/alimentador/models"
	"github.com/PamelaEduardaS/alimentador/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	Conn   *websocket.Conn
	UserID uint
}

// clients is registered from websocket handler goroutines and iterated from
// feed/refill handlers, so every access goes through clientsMutex. Holding
// the lock across broadcast writes also keeps concurrent writers off the
// same connection.
var (
	clients      = make(map[*websocket.Conn]Client)
	clientsMutex sync.Mutex
)

// HandleWebSocket keeps a connection open so the dashboard gauge re-renders
// on push instead of polling.
func HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	userIDRaw, exists := c.Get("user_id")
	if !exists {
		conn.Close()
		return
	}

	var userID uint
	switch v := userIDRaw.(type) {
	case float64:
		userID = uint(v)
	case uint:
		userID = v
	case string:
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			userID = uint(id)
		} else {
			conn.Close()
			return
		}
	default:
		conn.Close()
		return
	}

	clientsMutex.Lock()
	clients[conn] = Client{
		Conn:   conn,
		UserID: userID,
	}
	clientsMutex.Unlock()

	defer func() {
		clientsMutex.Lock()
		delete(clients, conn)
		clientsMutex.Unlock()
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// BroadcastLevel sends a new food level reading to all connected dashboards.
func BroadcastLevel(reading models.FoodLevelReading) {
	msg, _ := json.Marshal(reading)

	clientsMutex.Lock()
	defer clientsMutex.Unlock()
	for client := range clients {
		client.WriteMessage(websocket.TextMessage, msg)
	}
}

// BroadcastLowLevelAlert warns connected dashboards that the hopper is
// running out and needs a refill.
func BroadcastLowLevelAlert(reading models.FoodLevelReading) {
	notification := map[string]interface{}{
		"message": "Food level critical! Refill the hopper.",
		"level":   reading.Level,
		"status":  utils.LevelStatus(reading.Level),
	}
	msg, _ := json.Marshal(notification)

	clientsMutex.Lock()
	defer clientsMutex.Unlock()
	for _, client := range clients {
		client.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
