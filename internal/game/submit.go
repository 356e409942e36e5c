package game

import (
	"fmt"

	"cardparty/backend/internal/models"
	"cardparty/backend/pkg/logger"

	"gorm.io/gorm"
)

// SubmitCards records the player's picks for the current round.
//
// The declared amount must equal the current black card's pick, the id list
// must match the declared amount, and every id must point at a live entry
// in the player's hand for this game. The judge never submits. A second
// submission in the same round is rejected with ErrAlreadySubmitted and
// leaves the first one untouched.
//
// Order is the caller's: the first id gets order 1, the second 2, and so
// on, regardless of when the cards were drawn.
func (s *Service) SubmitCards(gameID, playerID uint, handEntryIDs []uint, declaredAmount int) error {
	defer s.locks.acquire(gameID)()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		g, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if _, err := memberOf(g, playerID); err != nil {
			return err
		}
		if g.Ended {
			return fmt.Errorf("game %d has ended: %w", gameID, ErrConflict)
		}
		if g.BlackCard == nil {
			return fmt.Errorf("no black card in play for game %d: %w", gameID, ErrConflict)
		}
		if g.JudgeID != nil && *g.JudgeID == playerID {
			return fmt.Errorf("the judge does not submit cards: %w", ErrForbidden)
		}

		if declaredAmount != g.BlackCard.Pick {
			return fmt.Errorf("black card requires %d cards, declared %d: %w",
				g.BlackCard.Pick, declaredAmount, ErrValidation)
		}
		if len(handEntryIDs) != declaredAmount {
			return fmt.Errorf("declared %d cards, got %d ids: %w",
				declaredAmount, len(handEntryIDs), ErrValidation)
		}

		var submitted int64
		err = tx.Model(&models.HandEntry{}).
			Where("game_id = ? AND player_id = ? AND selected = ?", gameID, playerID, true).
			Count(&submitted).Error
		if err != nil {
			return err
		}
		if submitted > 0 {
			return fmt.Errorf("player %d: %w", playerID, ErrAlreadySubmitted)
		}

		var entries []models.HandEntry
		err = tx.Where("id IN ? AND game_id = ? AND player_id = ?", handEntryIDs, gameID, playerID).
			Find(&entries).Error
		if err != nil {
			return err
		}
		if len(entries) != len(handEntryIDs) {
			return fmt.Errorf("submitted cards are not all in the player's hand: %w", ErrNotFound)
		}

		for i, id := range handEntryIDs {
			order := i + 1
			err := tx.Model(&models.HandEntry{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{"selected": true, "submit_order": order}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Log.Infow("cards submitted", "game_id", gameID, "player_id", playerID)

	s.notifier.NotifyGame(gameID, EventCardsSubmitted, CardsSubmittedPayload{
		GameID:   gameID,
		PlayerID: playerID,
	})
	return nil
}
