package models

import "time"

// Activity feed entry, also broadcast live to the project dashboard.
type StudyEvent struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:32"` // "session.completed" | "challenge.completed" | "survey.submitted"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
