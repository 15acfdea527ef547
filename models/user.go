package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	ParticipantID string `gorm:"uniqueIndex;not null"` // anonymised study ID handed out on paper
	Admin         bool   `gorm:"default:false"`
}
