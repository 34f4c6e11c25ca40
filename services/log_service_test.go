package services

import (
	"context"
	"testing"
	"time"

	"github.com/Slaymish/HealthDashboard/models"

	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T) *time.Time {
	t.Helper()
	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)
	return &d
}

func TestLogWeightOverwritesOnSameDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogWeight(ctx, testUserID, 70.0, date))
	require.NoError(t, svc.LogWeight(ctx, testUserID, 71.5, date))

	require.Equal(t, int64(1), countLogs(t, db))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.NotNil(t, rec.WeightKg)
	require.Equal(t, 71.5, *rec.WeightKg)
}

func TestLogWeightRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()

	err := svc.LogWeight(ctx, testUserID, -1, testDate(t))
	require.ErrorIs(t, err, ErrInvalidInput)

	err = svc.LogWeight(ctx, testUserID, 0, testDate(t))
	require.ErrorIs(t, err, ErrInvalidInput)

	// Validation happens before any write: no record may appear for a
	// previously absent date.
	require.Equal(t, int64(0), countLogs(t, db))
}

func TestLogCardioAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogCardio(ctx, testUserID, 20, date))
	require.NoError(t, svc.LogCardio(ctx, testUserID, 15, date))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.NotNil(t, rec.TotalActivityMin)
	require.Equal(t, 35, *rec.TotalActivityMin)
	require.Equal(t, int64(1), countLogs(t, db))
}

func TestLogCardioRejectsNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)

	err := svc.LogCardio(context.Background(), testUserID, -5, testDate(t))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, int64(0), countLogs(t, db))
}

func TestLogCalorieAppendsEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogCalorie(ctx, testUserID, 500, "breakfast", date))
	require.NoError(t, svc.LogCalorie(ctx, testUserID, 300, "", date))
	require.NoError(t, svc.LogCalorie(ctx, testUserID, 200, "snack", date))

	require.Equal(t, int64(1), countLogs(t, db))

	var entries []models.CalorieEntry
	require.NoError(t, db.Order("id").Find(&entries).Error)
	require.Len(t, entries, 3)
	require.NotNil(t, entries[0].Note)
	require.Equal(t, "breakfast", *entries[0].Note)
	// Empty notes are stored as null, not as "".
	require.Nil(t, entries[1].Note)

	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	require.Equal(t, 1000, total)
}

func TestLogCalorieRejectsNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)

	err := svc.LogCalorie(context.Background(), testUserID, -10, "", testDate(t))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, int64(0), countLogs(t, db))
}

func TestLogMoodOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogMood(ctx, testUserID, 3, date))
	require.NoError(t, svc.LogMood(ctx, testUserID, 5, date))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.NotNil(t, rec.Mood)
	require.Equal(t, 5, *rec.Mood)
}

func TestLogMotivationOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogMotivation(ctx, testUserID, 2, date))
	require.NoError(t, svc.LogMotivation(ctx, testUserID, 4, date))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.NotNil(t, rec.Motivation)
	require.Equal(t, 4, *rec.Motivation)
	require.Equal(t, int64(1), countLogs(t, db))
}

func TestLogSleepOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogSleep(ctx, testUserID, 420, date))
	require.NoError(t, svc.LogSleep(ctx, testUserID, 390, date))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.NotNil(t, rec.SleepDuration)
	require.Equal(t, 390, *rec.SleepDuration)
}

func TestLogSleepRejectsNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)

	err := svc.LogSleep(context.Background(), testUserID, -60, testDate(t))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, int64(0), countLogs(t, db))
}

func TestExplicitDateTargetsThatDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()

	past := time.Date(2025, time.April, 20, 0, 0, 0, 0, time.Local)
	require.NoError(t, svc.LogWeight(ctx, testUserID, 80, &past))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.Equal(t, past.Format("2006-01-02"), rec.LogDate.Format("2006-01-02"))
}

func TestOperationsShareOneRecordPerDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	require.NoError(t, svc.LogWeight(ctx, testUserID, 72, date))
	require.NoError(t, svc.LogMood(ctx, testUserID, 4, date))
	require.NoError(t, svc.LogCardio(ctx, testUserID, 30, date))
	require.NoError(t, svc.LogMotivation(ctx, testUserID, 3, date))
	require.NoError(t, svc.LogSleep(ctx, testUserID, 450, date))
	require.NoError(t, svc.LogBudget(ctx, testUserID, 1800, date))

	require.Equal(t, int64(1), countLogs(t, db))

	var rec models.DailyLog
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&rec).Error)
	require.Equal(t, 72.0, *rec.WeightKg)
	require.Equal(t, 4, *rec.Mood)
	require.Equal(t, 30, *rec.TotalActivityMin)
	require.Equal(t, 3, *rec.Motivation)
	require.Equal(t, 450, *rec.SleepDuration)
	require.Equal(t, 1800, *rec.KcalBudgeted)
}

func TestDeleteCalorieEntryScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewLogService(db, nil, nil)
	ctx := context.Background()
	date := testDate(t)

	// A second user with an entry of their own.
	other := models.User{Name: "other", HeightCm: 170}
	other.ID = 2
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, svc.LogCalorie(ctx, testUserID, 500, "mine", date))
	require.NoError(t, svc.LogCalorie(ctx, other.ID, 400, "theirs", date))

	var theirs models.CalorieEntry
	require.NoError(t, db.Joins("JOIN daily_logs ON daily_logs.id = calorie_entries.log_id").
		Where("daily_logs.user_id = ?", other.ID).First(&theirs).Error)

	// Deleting another user's entry is a no-op.
	require.NoError(t, svc.DeleteCalorieEntry(ctx, testUserID, theirs.ID))
	var n int64
	require.NoError(t, db.Model(&models.CalorieEntry{}).Count(&n).Error)
	require.Equal(t, int64(2), n)

	require.NoError(t, svc.DeleteCalorieEntry(ctx, other.ID, theirs.ID))
	require.NoError(t, db.Model(&models.CalorieEntry{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}
