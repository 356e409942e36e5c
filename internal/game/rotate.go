package game

import (
	"errors"
	"fmt"

	"cardparty/backend/internal/models"
	"cardparty/backend/pkg/logger"

	"gorm.io/gorm"
)

// attachBlackCard records the card in the game's drawn history and makes it
// current. The history row is written at draw time, so the exclusion set
// always covers the card in play as well as past rounds.
func attachBlackCard(tx *gorm.DB, g *models.Game, card *models.BlackCard) error {
	if err := tx.Model(g).Association("DrawnBlackCards").Append(card); err != nil {
		return err
	}
	return tx.Model(g).Update("black_card_id", card.ID).Error
}

// DrawBlackCard opens a round: it draws a prompt the game has not played
// yet and makes it current. Only valid while no prompt is in play. Deck
// exhaustion here ends the game.
func (s *Service) DrawBlackCard(gameID uint) (*models.BlackCard, error) {
	defer s.locks.acquire(gameID)()

	var (
		card      *models.BlackCard
		exhausted bool
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		g, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if g.Ended {
			return fmt.Errorf("game %d has ended: %w", gameID, ErrConflict)
		}
		if g.BlackCardID != nil {
			return fmt.Errorf("game %d already has a black card in play: %w", gameID, ErrConflict)
		}

		card, err = drawBlackCard(tx, g)
		if errors.Is(err, ErrDeckExhausted) {
			// The ended flag must commit even though the draw failed.
			exhausted = true
			return tx.Model(g).Update("ended", true).Error
		}
		if err != nil {
			return err
		}
		return attachBlackCard(tx, g, card)
	})
	if err != nil {
		return nil, err
	}
	if exhausted {
		logger.Log.Infow("black deck exhausted, game over", "game_id", gameID)
		return nil, fmt.Errorf("black deck empty, game %d over: %w", gameID, ErrDeckExhausted)
	}
	return card, nil
}

// DiscardBlackCard throws away the prompt in play without rotating,
// returning the game to its between-rounds state. The discarded card stays
// in the drawn history and cannot come back. Used for recovery and in
// tests that need a prompt with a specific pick.
func (s *Service) DiscardBlackCard(gameID uint) error {
	defer s.locks.acquire(gameID)()

	return s.db.Transaction(func(tx *gorm.DB) error {
		g, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if g.BlackCardID == nil {
			return fmt.Errorf("game %d has no black card in play: %w", gameID, ErrConflict)
		}
		return tx.Model(g).Update("black_card_id", nil).Error
	})
}

// nextJudge picks the member after the current judge in join order,
// wrapping to the first member. Recomputed from the membership on every
// rotation, so players who joined mid-game take their place at the end of
// the ring without renumbering anyone.
func nextJudge(g *models.Game) *models.Player {
	if len(g.Players) == 0 {
		return nil
	}
	if g.JudgeID == nil {
		return &g.Players[0]
	}
	for i := range g.Players {
		if g.Players[i].ID > *g.JudgeID {
			return &g.Players[i]
		}
	}
	return &g.Players[0]
}

// Rotate closes the round and opens the next one in a single transaction:
// the next judge takes over, every submitted hand entry is tombstoned,
// every member's hand is topped back up, the played prompt is retired and a
// new one drawn.
//
// If the black deck is exhausted the cleanup still commits, the game is
// marked ended, and ErrDeckExhausted is returned so the caller can report
// the game as over rather than as failed.
//
// Rotation holds the game's lock for its full duration. A submission that
// loses the race to it therefore runs against the new round: the submitting
// player's selected entries are gone (tombstoned) and their submitted-state
// is reset, so the late call is judged purely by the new round's rules.
func (s *Service) Rotate(gameID, requestingPlayerID uint) (*models.Game, error) {
	defer s.locks.acquire(gameID)()

	var (
		g     *models.Game
		hands map[uint][]models.WhiteCard
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		g, err = loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if _, err := memberOf(g, requestingPlayerID); err != nil {
			return err
		}
		if g.Ended {
			return fmt.Errorf("game %d has ended: %w", gameID, ErrConflict)
		}
		if g.BlackCardID == nil {
			return fmt.Errorf("game %d has no round to rotate: %w", gameID, ErrConflict)
		}

		judge := nextJudge(g)

		// Tombstone the closed round's submissions. Unplayed cards stay in
		// their owners' hands.
		err = tx.Where("game_id = ? AND selected = ?", gameID, true).
			Delete(&models.HandEntry{}).Error
		if err != nil {
			return err
		}

		hands = make(map[uint][]models.WhiteCard, len(g.Players))
		for _, p := range g.Players {
			cards, err := topUpHand(tx, g, p.ID)
			if err != nil {
				return err
			}
			hands[p.ID] = cards
		}

		// Retire the played prompt; its history row already blocks redraw.
		if err := tx.Model(g).Update("black_card_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(g).Update("judge_id", judge.ID).Error; err != nil {
			return err
		}
		g.JudgeID = &judge.ID
		g.Judge = judge

		card, err := drawBlackCard(tx, g)
		if errors.Is(err, ErrDeckExhausted) {
			g.Ended = true
			g.BlackCard = nil
			g.BlackCardID = nil
			return tx.Model(g).Update("ended", true).Error
		}
		if err != nil {
			return err
		}
		if err := attachBlackCard(tx, g, card); err != nil {
			return err
		}
		g.BlackCard = card
		g.BlackCardID = &card.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyGame(gameID, EventJudgeRotated, JudgeRotatedPayload{
		GameID:    gameID,
		JudgeID:   *g.JudgeID,
		BlackCard: g.BlackCard,
		GameEnded: g.Ended,
	})
	for playerID, cards := range hands {
		if len(cards) == 0 {
			continue
		}
		s.notifier.NotifyPlayer(gameID, playerID, EventCardsDealt, CardsDealtPayload{
			PlayerID: playerID,
			Cards:    cards,
		})
	}

	if g.Ended {
		logger.Log.Infow("black deck exhausted, game over", "game_id", gameID)
		return g, fmt.Errorf("black deck empty, game %d over: %w", gameID, ErrDeckExhausted)
	}

	logger.Log.Infow("round rotated",
		"game_id", gameID, "judge_id", *g.JudgeID, "black_card_id", *g.BlackCardID)
	return g, nil
}
