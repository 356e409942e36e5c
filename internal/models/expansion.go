package models

// Expansion is a themed bundle of black and white cards. Reference data,
// seeded outside the engine and never mutated by it.
type Expansion struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;unique;not null"`
}
