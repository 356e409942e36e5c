package models

import "gorm.io/gorm"

// HandLimit is the ceiling on a player's live hand size outside of an
// in-progress submission.
const HandLimit = 7

// Game is one shared session: its members, selected expansions, the current
// judge and prompt, and the history of prompts already played.
type Game struct {
	gorm.Model
	Name string `gorm:"size:255;not null"`
	// Code is the short join code players share out of band. Unique among
	// games that have not ended.
	Code  string `gorm:"size:4;not null;index"`
	Ended bool   `gorm:"not null;default:false"`

	JudgeID     *uint
	BlackCardID *uint

	Judge     *Player    `gorm:"foreignKey:JudgeID"`
	BlackCard *BlackCard `gorm:"foreignKey:BlackCardID"`
	Players   []Player   `gorm:"foreignKey:GameID"`

	Expansions []*Expansion `gorm:"many2many:game_expansions;"`
	// DrawnBlackCards accumulates every prompt ever drawn in this game,
	// including the current one. Draws exclude this set.
	DrawnBlackCards []*BlackCard `gorm:"many2many:game_black_cards;"`
}
