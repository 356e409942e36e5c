package models

import "gorm.io/gorm"

// HandEntry ties a white card to the player holding it in a given game.
// Created on draw, flagged Selected with a 1-based SubmitOrder when played,
// and soft-deleted (never hard-deleted) when the round resolves so past
// rounds stay auditable. Live-hand queries rely on gorm's default
// deleted_at filter; history queries go through Unscoped.
type HandEntry struct {
	gorm.Model
	GameID      uint `gorm:"not null;index"`
	PlayerID    uint `gorm:"not null;index"`
	WhiteCardID uint `gorm:"not null"`

	Selected    bool `gorm:"not null;default:false"`
	SubmitOrder *int

	WhiteCard WhiteCard `gorm:"foreignKey:WhiteCardID"`
}
