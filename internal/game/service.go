package game

import (
	"errors"
	"fmt"

	"cardparty/backend/internal/models"
	"cardparty/backend/pkg/logger"

	"gorm.io/gorm"
)

// Service owns the round and card-deal state machine. Every mutating
// operation serializes on a per-game lock and runs inside one transaction,
// so a game's state moves through whole rounds or not at all.
type Service struct {
	db       *gorm.DB
	notifier Notifier
	locks    *gameLocks
}

func NewService(db *gorm.DB, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		db:       db,
		notifier: notifier,
		locks:    newGameLocks(),
	}
}

// GameView is the composed result of create/join: the game, the acting
// player, and that player's freshly dealt hand.
type GameView struct {
	Game   models.Game
	Player models.Player
	Cards  []models.WhiteCard
}

// loadGame fetches a game with members (join order), expansions and the
// current black card. Members are ordered by player id ascending, which is
// join order because players are created at join time.
func loadGame(tx *gorm.DB, gameID uint) (*models.Game, error) {
	var g models.Game
	err := tx.
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("players.id ASC")
		}).
		Preload("Expansions").
		Preload("BlackCard").
		First(&g, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// memberOf returns the member row for playerID or ErrForbidden when the
// player does not belong to the game.
func memberOf(g *models.Game, playerID uint) (*models.Player, error) {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			return &g.Players[i], nil
		}
	}
	return nil, fmt.Errorf("player %d is not in game %d: %w", playerID, g.ID, ErrForbidden)
}

// CreateGame creates a game for the given creator, attaches the selected
// expansions, makes the creator both first member and first judge, and
// deals the creator's initial hand. The round itself starts later with
// DrawBlackCard.
func (s *Service) CreateGame(creatorName string, expansionIDs []uint) (*GameView, error) {
	if creatorName == "" {
		return nil, fmt.Errorf("creator name must not be empty: %w", ErrValidation)
	}
	if len(expansionIDs) == 0 {
		return nil, fmt.Errorf("at least one expansion must be selected: %w", ErrValidation)
	}

	var expansions []*models.Expansion
	if err := s.db.Where("id IN ?", expansionIDs).Find(&expansions).Error; err != nil {
		return nil, err
	}
	if len(expansions) != len(expansionIDs) {
		return nil, fmt.Errorf("unknown expansion selected: %w", ErrValidation)
	}

	var view GameView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		player := models.Player{Name: creatorName}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}

		g := models.Game{
			Name:    fmt.Sprintf("%s's game", creatorName),
			Code:    generateUniqueCode(tx),
			JudgeID: &player.ID,
		}
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		if err := tx.Model(&g).Association("Expansions").Append(expansions); err != nil {
			return err
		}
		if err := tx.Model(&player).Update("game_id", g.ID).Error; err != nil {
			return err
		}

		g.Expansions = expansions
		cards, err := topUpHand(tx, &g, player.ID)
		if err != nil {
			return err
		}

		g.Players = []models.Player{player}
		g.Judge = &player
		view = GameView{Game: g, Player: player, Cards: cards}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("game created",
		"game_id", view.Game.ID, "code", view.Game.Code, "creator", creatorName)

	s.notifier.NotifyPlayer(view.Game.ID, view.Player.ID, EventCardsDealt, CardsDealtPayload{
		PlayerID: view.Player.ID,
		Cards:    view.Cards,
	})
	return &view, nil
}

// JoinGame adds a new player to the active game matching the join code and
// deals their initial hand. Codes are matched case-insensitively.
func (s *Service) JoinGame(code, playerName string) (*GameView, error) {
	if playerName == "" {
		return nil, fmt.Errorf("player name must not be empty: %w", ErrValidation)
	}

	var g models.Game
	err := s.db.Preload("Expansions").
		Where("code = ? AND ended = ?", normalizeCode(code), false).
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no active game with code %q: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	defer s.locks.acquire(g.ID)()

	var view GameView
	err = s.db.Transaction(func(tx *gorm.DB) error {
		player := models.Player{Name: playerName, GameID: &g.ID}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}

		cards, err := topUpHand(tx, &g, player.ID)
		if err != nil {
			return err
		}

		full, err := loadGame(tx, g.ID)
		if err != nil {
			return err
		}
		view = GameView{Game: *full, Player: player, Cards: cards}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("player joined",
		"game_id", g.ID, "player_id", view.Player.ID, "name", playerName)

	s.notifier.NotifyPlayer(g.ID, view.Player.ID, EventCardsDealt, CardsDealtPayload{
		PlayerID: view.Player.ID,
		Cards:    view.Cards,
	})
	return &view, nil
}

// DrawWhiteCards tops the calling player's hand up to the hand limit and
// returns what was drawn. A hand already at the limit draws nothing; a hand
// below the limit with nothing left to draw fails with ErrDeckExhausted.
func (s *Service) DrawWhiteCards(gameID, playerID uint) ([]models.WhiteCard, error) {
	defer s.locks.acquire(gameID)()

	var cards []models.WhiteCard
	err := s.db.Transaction(func(tx *gorm.DB) error {
		g, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if _, err := memberOf(g, playerID); err != nil {
			return err
		}

		size, err := liveHandSize(tx, g.ID, playerID)
		if err != nil {
			return err
		}
		if size >= models.HandLimit {
			return nil
		}

		cards, err = topUpHand(tx, g, playerID)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			return fmt.Errorf("no white cards left for player %d: %w", playerID, ErrDeckExhausted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(cards) > 0 {
		s.notifier.NotifyPlayer(gameID, playerID, EventCardsDealt, CardsDealtPayload{
			PlayerID: playerID,
			Cards:    cards,
		})
	}
	return cards, nil
}
