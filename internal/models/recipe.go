package models

import (
	"time"
)

// Difficulty levels a recipe may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe is the single domain entity: a named dish with timing,
// difficulty, ingredients and description. Ingredients are stored as
// one comma-separated string; consumers split on "," and trim.
// There is no DeletedAt column: deletes are hard deletes, and the
// auto-increment sequence guarantees ids are never reused.
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	PrepTime    int       `gorm:"not null;check:prep_time >= 0" json:"prep_time"`
	CookTime    int       `gorm:"not null;check:cook_time >= 0" json:"cook_time"`
	Difficulty  string    `gorm:"size:10;not null" json:"difficulty"`
	Description string    `gorm:"type:text;not null" json:"description"`
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
