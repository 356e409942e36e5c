package game

import (
	"errors"

	"cardparty/backend/internal/models"

	"gorm.io/gorm"
)

// liveHandSize counts the player's non-tombstoned hand entries.
func liveHandSize(tx *gorm.DB, gameID, playerID uint) (int, error) {
	var count int64
	err := tx.Model(&models.HandEntry{}).
		Where("game_id = ? AND player_id = ?", gameID, playerID).
		Count(&count).Error
	return int(count), err
}

// topUpHand draws until the player's live hand reaches models.HandLimit or
// the supply for that player runs out, persisting a HandEntry per card.
// A hand already at or above the limit draws nothing. Running out of
// supply mid-top-up is not an error: the player keeps whatever could be
// drawn, which is what end-of-round replenishment needs.
func topUpHand(tx *gorm.DB, g *models.Game, playerID uint) ([]models.WhiteCard, error) {
	size, err := liveHandSize(tx, g.ID, playerID)
	if err != nil {
		return nil, err
	}

	need := models.HandLimit - size
	if need <= 0 {
		return nil, nil
	}

	cards := make([]models.WhiteCard, 0, need)
	for i := 0; i < need; i++ {
		card, err := drawWhiteCard(tx, g, playerID)
		if errors.Is(err, ErrDeckExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}

		entry := models.HandEntry{
			GameID:      g.ID,
			PlayerID:    playerID,
			WhiteCardID: card.ID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// liveHand loads the player's current hand with card contents, oldest draw
// first.
func liveHand(tx *gorm.DB, gameID, playerID uint) ([]models.HandEntry, error) {
	var entries []models.HandEntry
	err := tx.Preload("WhiteCard").
		Where("game_id = ? AND player_id = ?", gameID, playerID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
