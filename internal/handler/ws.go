package handler

import (
	"net/http"

	"cardparty/backend/internal/hub"
	"cardparty/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler upgrades clients to a websocket and streams game events.
type EventsHandler struct {
	Hub *hub.Hub
}

func NewEventsHandler(h *hub.Hub) *EventsHandler {
	return &EventsHandler{Hub: h}
}

// Events godoc
// @Summary      Stream game events
// @Description  Upgrades to a websocket and streams card-dealt, cards-submitted and judge-rotated events for the game.
// @Tags         game
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      101
// @Router       /game/{id}/events [get]
func (h *EventsHandler) Events(c *gin.Context) {
	gameID := gameIDParam(c)
	playerID := playerIDFrom(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Errorw("websocket upgrade failed", "game_id", gameID, "err", err)
		return
	}

	client := make(hub.Client, 32)
	h.Hub.Subscribe(gameID, playerID, client)
	logger.Log.Infow("client connected", "game_id", gameID, "player_id", playerID)

	// Reader only watches for the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Hub.Unsubscribe(gameID, client)
				return
			}
		}
	}()

	for message := range client {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.Hub.Unsubscribe(gameID, client)
			break
		}
	}
	conn.Close()
}
