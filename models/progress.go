package models

import (
	"time"

	"gorm.io/gorm"
)

var validMoods = map[string]bool{
	"excellent": true,
	"good":      true,
	"okay":      true,
	"poor":      true,
	"terrible":  true,
}

func IsValidMood(m string) bool { return validMoods[m] }

// Progress is an append-only log entry; listings are newest first.
type Progress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"userId"`
	Date   time.Time `gorm:"index;not null" json:"date"`

	Weight float64 `json:"weight"` // kg

	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Arms   float64 `json:"arms"`
	Thighs float64 `json:"thighs"`

	Mood        string `json:"mood,omitempty"`
	EnergyLevel int    `json:"energyLevel,omitempty"` // 1-10
	Notes       string `json:"notes,omitempty"`
	Photos      string `json:"photos,omitempty"` // comma-joined URLs
}
