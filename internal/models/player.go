package models

import "gorm.io/gorm"

// Player represents one participant in a game. A player belongs to exactly
// one game at a time; players are created on create/join, so ascending ID
// within a game equals join order.
type Player struct {
	gorm.Model
	Name  string `gorm:"size:255;not null"`
	Score int    `gorm:"not null;default:0"`

	GameID *uint `gorm:"index"`
}
