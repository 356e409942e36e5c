package game

import "cardparty/backend/internal/models"

// Event types published by the engine.
const (
	EventCardsDealt     = "cards.dealt"
	EventCardsSubmitted = "cards.submitted"
	EventJudgeRotated   = "judge.rotated"
)

// Notifier delivers domain events to connected clients. Delivery is
// fire-and-forget: implementations must never fail the operation that
// emitted the event.
type Notifier interface {
	// NotifyGame publishes an event to every client watching the game.
	NotifyGame(gameID uint, eventType string, payload interface{})
	// NotifyPlayer publishes an event to a single player's clients.
	NotifyPlayer(gameID, playerID uint, eventType string, payload interface{})
}

// CardsDealtPayload accompanies EventCardsDealt on a player channel.
type CardsDealtPayload struct {
	PlayerID uint               `json:"player_id"`
	Cards    []models.WhiteCard `json:"cards"`
}

// CardsSubmittedPayload accompanies EventCardsSubmitted on a game channel.
// It deliberately omits which cards were played; only the judge reveal
// after all submissions shows those.
type CardsSubmittedPayload struct {
	GameID   uint `json:"game_id"`
	PlayerID uint `json:"player_id"`
}

// JudgeRotatedPayload accompanies EventJudgeRotated on a game channel.
type JudgeRotatedPayload struct {
	GameID    uint              `json:"game_id"`
	JudgeID   uint              `json:"judge_id"`
	BlackCard *models.BlackCard `json:"black_card"`
	GameEnded bool              `json:"game_ended"`
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) NotifyGame(uint, string, interface{})         {}
func (NopNotifier) NotifyPlayer(uint, uint, string, interface{}) {}
