package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog is the per-(user, date) aggregate record behind every logging
// endpoint. LogDate is truncated to local midnight and the (UserID, LogDate)
// pair is unique, so concurrent writes for the same day always land on the
// same row.
type DailyLog struct {
	gorm.Model
	UserID           uint      `gorm:"uniqueIndex:idx_user_log_date;not null"`
	LogDate          time.Time `gorm:"uniqueIndex:idx_user_log_date;not null"`
	WeightKg         *float64
	Mood             *int
	Motivation       *int
	TotalActivityMin *int
	SleepDuration    *int
	KcalBudgeted     *int
	Entries          []CalorieEntry `gorm:"foreignKey:LogID"`
}

// CalorieEntry is one food/snack entry under a daily log. Entries only
// accumulate; day totals are derived at query time.
type CalorieEntry struct {
	gorm.Model
	LogID    uint `gorm:"index;not null"`
	Calories int  `gorm:"not null"`
	Note     *string
}
