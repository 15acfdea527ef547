package models

import (
	"time"

	"gorm.io/gorm"
)

// One documented food entry within a kitchen-check session.
type KitchenItem struct {
	gorm.Model
	UserID           uint   `gorm:"index;not null"`
	SessionID        uint   `gorm:"index;not null"`
	Name             string `gorm:"not null"`
	Category         string `gorm:"not null"` // one of data.Categories
	Origin           string `gorm:"not null"` // one of data.Origins
	OriginDetail     string // country, or municipality + PLZ
	Label            string // production label (Bio, IP, …)
	PurchaseLocation string
	AddedAt          time.Time `gorm:"index;not null"` // server-assigned, drives ordering
}
