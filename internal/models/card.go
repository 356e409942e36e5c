package models

// BlackCard is a round's prompt. Pick is how many white cards a non-judge
// player must submit that round (1-3).
type BlackCard struct {
	ID          uint   `gorm:"primaryKey"`
	ExpansionID uint   `gorm:"not null;index"`
	Text        string `gorm:"not null"`
	Pick        int    `gorm:"not null;default:1"`

	Expansion Expansion `gorm:"foreignKey:ExpansionID"`
}

// WhiteCard is a playable answer card.
type WhiteCard struct {
	ID          uint   `gorm:"primaryKey"`
	ExpansionID uint   `gorm:"not null;index"`
	Text        string `gorm:"not null"`

	Expansion Expansion `gorm:"foreignKey:ExpansionID"`
}
