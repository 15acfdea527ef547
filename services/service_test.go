package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testStudyCfg = config.StudyConfig{RequiredItems: 15, RequiredCategories: 5}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory DB keeps all pooled connections on the same
	// database; a plain :memory: DSN would give every connection its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.KitchenCheckSession{},
		&models.KitchenItem{},
		&models.Observation{},
		&models.MiniChallengeProgress{},
		&models.StudyEvent{},
		&models.UserDevice{},
	))
	return db
}
