package game

import (
	"errors"

	"cardparty/backend/internal/models"

	"gorm.io/gorm"
)

// The deck is stateless: a draw is a uniformly-random pick over the game's
// selected expansions minus an exclusion set, and the exclusion sets live
// with the game (black-card history) or the player (hand entries, tombstoned
// ones included). Reading the exclusions and writing the draw happen in the
// same transaction so concurrent draws cannot hand out the same card.

func expansionIDs(g *models.Game) []uint {
	ids := make([]uint, 0, len(g.Expansions))
	for _, e := range g.Expansions {
		ids = append(ids, e.ID)
	}
	return ids
}

// drawWhiteCard returns a random white card this player has never held in
// this game. Fails with ErrDeckExhausted when every card in the game's
// expansions has already passed through the player's hand.
func drawWhiteCard(tx *gorm.DB, g *models.Game, playerID uint) (*models.WhiteCard, error) {
	drawn := tx.Model(&models.HandEntry{}).Unscoped().
		Select("white_card_id").
		Where("game_id = ? AND player_id = ?", g.ID, playerID)

	var card models.WhiteCard
	err := tx.
		Where("expansion_id IN ?", expansionIDs(g)).
		Where("id NOT IN (?)", drawn).
		Order("RANDOM()").
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeckExhausted
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// drawBlackCard returns a random black card this game has never played.
// Fails with ErrDeckExhausted once the selected expansions hold no unplayed
// prompts.
func drawBlackCard(tx *gorm.DB, g *models.Game) (*models.BlackCard, error) {
	drawn := tx.Table("game_black_cards").
		Select("black_card_id").
		Where("game_id = ?", g.ID)

	var card models.BlackCard
	err := tx.
		Where("expansion_id IN ?", expansionIDs(g)).
		Where("id NOT IN (?)", drawn).
		Order("RANDOM()").
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeckExhausted
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}
