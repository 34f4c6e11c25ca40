package services

import (
	"fmt"
	"testing"

	"github.com/Slaymish/HealthDashboard/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID uint = 1

// newTestDB opens a fresh in-memory database, migrated and seeded with the
// test user. The shared-cache name keeps GORM's pooled connections on the
// same database while isolating tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.CalorieEntry{},
	))

	user := models.User{
		Name:              "tester",
		HeightCm:          180,
		GoalWeightKg:      60,
		MilestoneWeightKg: 63,
	}
	user.ID = testUserID
	require.NoError(t, db.Create(&user).Error)

	return db
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.DailyLog{}).Count(&n).Error)
	return n
}
