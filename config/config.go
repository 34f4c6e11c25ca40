package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Slaymish/HealthDashboard/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found, using process environment")
	}

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
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.CalorieEntry{},
	)
	if err != nil {
		zap.L().Fatal("auto-migrate failed", zap.Error(err))
	}

	if err := EnsureDefaultUser(DB); err != nil {
		zap.L().Fatal("failed to seed default user", zap.Error(err))
	}
}

// DefaultUserID is the identity used for requests that carry no token.
func DefaultUserID() uint {
	if v := os.Getenv("DEFAULT_USER_ID"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil && id > 0 {
			return uint(id)
		}
	}
	return 1
}

// EnsureDefaultUser creates the single-user profile on first boot so the
// BMI and goal queries have a height and target weights to work with.
func EnsureDefaultUser(db *gorm.DB) error {
	id := DefaultUserID()

	var user models.User
	err := db.First(&user, id).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user = models.User{
		Name:              envOr("USER_NAME", "owner"),
		HeightCm:          envFloat("USER_HEIGHT_CM", 180),
		GoalWeightKg:      envFloat("GOAL_WEIGHT_KG", 60),
		MilestoneWeightKg: envFloat("MILESTONE_WEIGHT_KG", 63),
	}
	user.ID = id
	return db.Create(&user).Error
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
