package game

import (
	"errors"
	"testing"

	"cardparty/backend/internal/models"
)

func TestGameState(t *testing.T) {
	s, db, _ := newTestService(t)
	gameID, views, black := startRound(t, s, db, 2, 1, 60)
	judge, player := views[0].Player.ID, views[1].Player.ID

	hand := liveHandIDs(t, db, gameID, player)
	if err := s.SubmitCards(gameID, player, hand[:1], black.Pick); err != nil {
		t.Fatalf("SubmitCards: %v", err)
	}

	state, err := s.GameState(gameID, player)
	if err != nil {
		t.Fatalf("GameState: %v", err)
	}

	if state.Game.JudgeID == nil || *state.Game.JudgeID != judge {
		t.Errorf("state judge = %v, want %d", state.Game.JudgeID, judge)
	}
	if state.Game.BlackCard == nil || state.Game.BlackCard.ID != black.ID {
		t.Errorf("state black card does not match the drawn prompt")
	}
	if len(state.Game.Players) != 2 {
		t.Errorf("state lists %d members, want 2", len(state.Game.Players))
	}
	if !state.HasSubmitted {
		t.Error("state does not show the player's submission")
	}
	// Selected cards stay in the live hand until the round rotates.
	if len(state.Hand) != models.HandLimit {
		t.Errorf("state hand = %d entries, want %d", len(state.Hand), models.HandLimit)
	}
	for _, e := range state.Hand {
		if e.WhiteCard.ID == 0 {
			t.Error("hand entry missing its card content")
		}
	}

	judgeState, err := s.GameState(gameID, judge)
	if err != nil {
		t.Fatalf("GameState for judge: %v", err)
	}
	if judgeState.HasSubmitted {
		t.Error("judge shown as having submitted")
	}
}

func TestGameStateForOutsider(t *testing.T) {
	s, db, _ := newTestService(t)
	gameID, _, _ := startRound(t, s, db, 2, 1, 60)

	outsider := models.Player{Name: "stranger"}
	if err := db.Create(&outsider).Error; err != nil {
		t.Fatalf("create outsider: %v", err)
	}

	if _, err := s.GameState(gameID, outsider.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if _, err := s.GameState(999999, outsider.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for unknown game", err)
	}
}

func TestListExpansions(t *testing.T) {
	s, db, _ := newTestService(t)
	seedExpansion(t, db, "first", []int{1, 2}, 5)
	seedExpansion(t, db, "second", []int{1}, 3)

	summaries, total, err := s.ListExpansions(1, 10)
	if err != nil {
		t.Fatalf("ListExpansions: %v", err)
	}
	if total != 2 || len(summaries) != 2 {
		t.Fatalf("got %d summaries (total %d), want 2", len(summaries), total)
	}
	if summaries[0].Name != "first" || summaries[0].BlackCardCount != 2 || summaries[0].WhiteCardCount != 5 {
		t.Errorf("first expansion summary wrong: %+v", summaries[0])
	}
	if summaries[1].Name != "second" || summaries[1].BlackCardCount != 1 || summaries[1].WhiteCardCount != 3 {
		t.Errorf("second expansion summary wrong: %+v", summaries[1])
	}

	// Pagination slices the list but keeps the full total.
	page2, total, err := s.ListExpansions(2, 1)
	if err != nil {
		t.Fatalf("ListExpansions page 2: %v", err)
	}
	if total != 2 || len(page2) != 1 || page2[0].Name != "second" {
		t.Errorf("page 2 of size 1 = %+v (total %d), want just %q", page2, total, "second")
	}
}
