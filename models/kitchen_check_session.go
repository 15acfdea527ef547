package models

import (
	"time"

	"gorm.io/gorm"
)

// One documentation round of a user's kitchen inventory. A nil CompletedAt
// marks the session as open; it is set exactly once on completion.
type KitchenCheckSession struct {
	gorm.Model
	UserID      uint `gorm:"index;not null"`
	Milestone   int  `gorm:"index;not null"` // 1 = Tag 1, 2 = Tag 29
	CompletedAt *time.Time
	Items       []KitchenItem `gorm:"foreignKey:SessionID"`
}
