package game

import (
	"errors"
	"testing"

	"cardparty/backend/internal/models"
)

func TestWhiteDrawsNeverRepeatForAPlayer(t *testing.T) {
	s, db, _ := newTestService(t)
	const supply = 20
	expID := seedExpansion(t, db, "base", []int{1}, supply)

	view, err := s.CreateGame("rick", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	g, err := loadGame(db, view.Game.ID)
	if err != nil {
		t.Fatalf("loadGame: %v", err)
	}

	seen := make(map[uint]bool)
	for _, c := range view.Cards {
		seen[c.ID] = true
	}

	// Drain the rest of the pool one card at a time. Every draw must be a
	// card this player has never held, tombstoned draws included.
	for {
		card, err := drawWhiteCard(db, g, view.Player.ID)
		if errors.Is(err, ErrDeckExhausted) {
			break
		}
		if err != nil {
			t.Fatalf("drawWhiteCard: %v", err)
		}
		if seen[card.ID] {
			t.Fatalf("card %d drawn twice for the same player", card.ID)
		}
		seen[card.ID] = true
		entry := models.HandEntry{GameID: g.ID, PlayerID: view.Player.ID, WhiteCardID: card.ID}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("create hand entry: %v", err)
		}
		// Tombstoning an entry must not return its card to the pool.
		if err := db.Delete(&entry).Error; err != nil {
			t.Fatalf("tombstone hand entry: %v", err)
		}
	}

	if len(seen) != supply {
		t.Errorf("player saw %d distinct cards, want the full supply of %d", len(seen), supply)
	}
}

func TestPlayersDrawFromDisjointSupplies(t *testing.T) {
	s, db, _ := newTestService(t)
	// Only 10 whites: two full hands of 7 do not fit globally, but draws
	// are without replacement per player, not per game.
	expID := seedExpansion(t, db, "base", []int{1}, 10)

	created, err := s.CreateGame("rick", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	joined, err := s.JoinGame(created.Game.Code, "morty")
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}

	if len(created.Cards) != models.HandLimit || len(joined.Cards) != models.HandLimit {
		t.Errorf("hands = %d and %d cards, want %d each",
			len(created.Cards), len(joined.Cards), models.HandLimit)
	}
}

func TestDrawWhiteCardsIsNoOpAtHandLimit(t *testing.T) {
	s, db, _ := newTestService(t)
	expID := seedExpansion(t, db, "base", []int{1}, 30)

	view, err := s.CreateGame("rick", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	cards, err := s.DrawWhiteCards(view.Game.ID, view.Player.ID)
	if err != nil {
		t.Fatalf("DrawWhiteCards at limit: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("drew %d cards with a full hand, want 0", len(cards))
	}
}

func TestDrawWhiteCardsFailsWhenSupplyGone(t *testing.T) {
	s, db, _ := newTestService(t)
	expID := seedExpansion(t, db, "tiny", []int{1}, 5)

	view, err := s.CreateGame("rick", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	// Hand holds all 5 cards the expansion has; below the limit with
	// nothing left to draw.
	if _, err := s.DrawWhiteCards(view.Game.ID, view.Player.ID); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("got %v, want ErrDeckExhausted", err)
	}
}

func TestDrawWhiteCardsRequiresMembership(t *testing.T) {
	s, db, _ := newTestService(t)
	expID := seedExpansion(t, db, "base", []int{1}, 30)

	view, err := s.CreateGame("rick", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	other, err := s.CreateGame("jerry", []uint{expID})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := s.DrawWhiteCards(view.Game.ID, other.Player.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden for non-member", err)
	}
}
