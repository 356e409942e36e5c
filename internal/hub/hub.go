package hub

import (
	"encoding/json"
	"sync"

	"cardparty/backend/pkg/logger"

	"github.com/google/uuid"
)

// Event represents a real-time event to be sent to clients. The ID lets
// clients drop duplicates after a reconnect replay.
type Event struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single connection watching a game. It's essentially a
// channel that the websocket writer listens to.
type Client chan []byte

// Hub manages all watched games and their clients. It satisfies the
// engine's Notifier: game-wide events reach every connected member, player
// events only the connections belonging to that player.
type Hub struct {
	games map[uint]map[Client]uint // client -> playerID
	mu    sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		games: make(map[uint]map[Client]uint),
	}
}

// Subscribe adds a player's connection to a game.
func (h *Hub) Subscribe(gameID, playerID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]uint)
	}
	h.games[gameID][client] = playerID
}

// Unsubscribe removes a connection from a game and closes its channel to
// signal the writer to stop.
func (h *Hub) Unsubscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.games, gameID)
			}
		}
	}
}

// NotifyGame sends an event to every client watching the game.
func (h *Hub) NotifyGame(gameID uint, eventType string, payload interface{}) {
	h.send(gameID, nil, eventType, payload)
}

// NotifyPlayer sends an event to one player's clients only.
func (h *Hub) NotifyPlayer(gameID, playerID uint, eventType string, payload interface{}) {
	h.send(gameID, &playerID, eventType, payload)
}

func (h *Hub) send(gameID uint, playerID *uint, eventType string, payload interface{}) {
	message, err := json.Marshal(Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		Payload: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to encode event", "type", eventType, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client, owner := range h.games[gameID] {
		if playerID != nil && owner != *playerID {
			continue
		}
		// Non-blocking send so a slow client never blocks the hub; a full
		// buffer drops the event and the client resyncs via the state
		// endpoint.
		select {
		case client <- message:
		default:
		}
	}
}
