package models

import (
	"time"

	"gorm.io/gorm"
)

// One answer of the one-time observation survey.
type Observation struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	QuestionID int       `gorm:"not null"`
	Value      string    `gorm:"type:text;not null"`
	Category   string    `gorm:"size:64"`
	ObservedAt time.Time `gorm:"not null"`
}
