package models

import (
	"time"

	"gorm.io/gorm"
)

// Per-user progress on a catalog challenge. At most one row per
// (user, challenge); repeat completions update the existing row.
type MiniChallengeProgress struct {
	gorm.Model
	UserID      uint `gorm:"not null;uniqueIndex:idx_user_challenge"`
	ChallengeID int  `gorm:"not null;uniqueIndex:idx_user_challenge"`
	Completed   bool
	CompletedAt *time.Time
	ProofText   string `gorm:"type:text"`
	ProofPhoto  string `gorm:"size:512"` // S3/CloudFront URL
}
