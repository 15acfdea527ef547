package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.KitchenCheckSession{},
		&models.KitchenItem{},
		&models.Observation{},
		&models.MiniChallengeProgress{},
		&models.StudyEvent{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// At most one open session per (user, milestone). Closes the two-tabs race
	// where both clients see "no open session" and each insert one.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_open_session_per_milestone
		ON kitchen_check_sessions (user_id, milestone)
		WHERE completed_at IS NULL AND deleted_at IS NULL`).Error
	if err != nil {
		log.Fatalf("Failed to create open-session index: %v", err)
	}
}
