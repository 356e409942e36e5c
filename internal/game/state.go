package game

import (
	"cardparty/backend/internal/models"
)

// StateView is the composed read model for one player: the game with its
// members and current prompt, the caller's live hand, and whether the
// caller has already submitted this round.
type StateView struct {
	Game         models.Game
	Hand         []models.HandEntry
	HasSubmitted bool
}

// GameState returns the current view of a game for one of its members.
func (s *Service) GameState(gameID, playerID uint) (*StateView, error) {
	g, err := loadGame(s.db, gameID)
	if err != nil {
		return nil, err
	}
	if _, err := memberOf(g, playerID); err != nil {
		return nil, err
	}

	if g.JudgeID != nil {
		for i := range g.Players {
			if g.Players[i].ID == *g.JudgeID {
				g.Judge = &g.Players[i]
			}
		}
	}

	hand, err := liveHand(s.db, gameID, playerID)
	if err != nil {
		return nil, err
	}

	submitted := false
	for _, e := range hand {
		if e.Selected {
			submitted = true
			break
		}
	}

	return &StateView{Game: *g, Hand: hand, HasSubmitted: submitted}, nil
}

// ExpansionSummary lists an expansion with its deck sizes.
type ExpansionSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	BlackCardCount int64  `json:"black_card_count"`
	WhiteCardCount int64  `json:"white_card_count"`
}

// ListExpansions returns a page of selectable expansions with card counts,
// plus the total number of expansions.
func (s *Service) ListExpansions(page, limit int) ([]ExpansionSummary, int64, error) {
	var total int64
	if err := s.db.Model(&models.Expansion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var summaries []ExpansionSummary
	err := s.db.Model(&models.Expansion{}).
		Select(`expansions.id, expansions.name,
			(SELECT COUNT(*) FROM black_cards WHERE black_cards.expansion_id = expansions.id) AS black_card_count,
			(SELECT COUNT(*) FROM white_cards WHERE white_cards.expansion_id = expansions.id) AS white_card_count`).
		Order("expansions.id ASC").
		Offset(offset).Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}
