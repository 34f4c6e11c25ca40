package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Slaymish/HealthDashboard/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LogService is the sole writer of daily logs and their calorie entries.
// Every operation resolves to exactly one DailyLog row per (user, date):
// created on the first write for that date, merged into on every later one.
type LogService struct {
	db  *gorm.DB
	hub *RealtimeHub
	log *zap.Logger
}

func NewLogService(db *gorm.DB, hub *RealtimeHub, log *zap.Logger) *LogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogService{db: db, hub: hub, log: log}
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// resolveDate applies the shared date rule: the explicit date when one was
// supplied, today otherwise. Either way the result is local midnight.
func resolveDate(date *time.Time) time.Time {
	if date != nil {
		return dayStartLocal(*date)
	}
	return dayStartLocal(time.Now())
}

// ensureDailyLog creates or matches the log row for (user, date) in a single
// insert-on-conflict statement, so concurrent calls for the same day cannot
// race into duplicate rows. The surviving row is then read back; not every
// driver returns it from the conflicting insert.
func (s *LogService) ensureDailyLog(ctx context.Context, userID uint, date time.Time) (*models.DailyLog, error) {
	rec := models.DailyLog{UserID: userID, LogDate: date}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"log_date": date}),
		}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}

	var out models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, date).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// LogWeight records the day's weight. A later call for the same date
// overwrites the earlier value.
func (s *LogService) LogWeight(ctx context.Context, userID uint, weightKg float64, date *time.Time) error {
	if weightKg <= 0 {
		return fmt.Errorf("%w: weight_kg must be a positive value", ErrInvalidInput)
	}

	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("weight_kg", weightKg).Error; err != nil {
		return err
	}

	s.broadcast(userID, "weight", day)
	return nil
}

// LogCalorie appends a calorie entry under the day's log. Entries never
// merge; the day's total is derived at query time.
func (s *LogService) LogCalorie(ctx context.Context, userID uint, calories int, note string, date *time.Time) error {
	if calories < 0 {
		return fmt.Errorf("%w: calories must be a non-negative value", ErrInvalidInput)
	}

	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}

	entry := models.CalorieEntry{LogID: rec.ID, Calories: calories}
	if note != "" {
		entry.Note = &note
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	s.broadcast(userID, "calorie", day)
	return nil
}

// LogCardio adds the duration onto the day's activity total, treating an
// unset total as zero. The total only ever grows within a date.
func (s *LogService) LogCardio(ctx context.Context, userID uint, durationMin int, date *time.Time) error {
	if durationMin < 0 {
		return fmt.Errorf("%w: duration_min must be a non-negative value", ErrInvalidInput)
	}

	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("total_activity_min", gorm.Expr("COALESCE(total_activity_min, 0) + ?", durationMin)).Error; err != nil {
		return err
	}

	s.broadcast(userID, "cardio", day)
	return nil
}

// LogMood records the day's mood, last write wins.
func (s *LogService) LogMood(ctx context.Context, userID uint, mood int, date *time.Time) error {
	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("mood", mood).Error; err != nil {
		return err
	}

	s.broadcast(userID, "mood", day)
	return nil
}

// LogMotivation records the day's motivation, last write wins.
func (s *LogService) LogMotivation(ctx context.Context, userID uint, motivation int, date *time.Time) error {
	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("motivation", motivation).Error; err != nil {
		return err
	}

	s.broadcast(userID, "motivation", day)
	return nil
}

// LogSleep sets the day's sleep duration in minutes, overwrite semantics.
func (s *LogService) LogSleep(ctx context.Context, userID uint, sleepMin int, date *time.Time) error {
	if sleepMin < 0 {
		return fmt.Errorf("%w: sleep_min must be a non-negative value", ErrInvalidInput)
	}

	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("sleep_duration", sleepMin).Error; err != nil {
		return err
	}

	s.broadcast(userID, "sleep", day)
	return nil
}

// LogBudget sets the day's budgeted kcal, overwrite semantics. The weekly
// rollup derives its deficit from this against the day's calorie entries.
func (s *LogService) LogBudget(ctx context.Context, userID uint, kcal int, date *time.Time) error {
	if kcal < 0 {
		return fmt.Errorf("%w: kcal_budgeted must be a non-negative value", ErrInvalidInput)
	}

	day := resolveDate(date)
	rec, err := s.ensureDailyLog(ctx, userID, day)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLog{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Update("kcal_budgeted", kcal).Error; err != nil {
		return err
	}

	s.broadcast(userID, "budget", day)
	return nil
}

// DeleteCalorieEntry removes one calorie entry, scoped to logs owned by the
// user. Deleting an entry that does not exist is not an error.
func (s *LogService) DeleteCalorieEntry(ctx context.Context, userID uint, entryID uint) error {
	logs := s.db.Model(&models.DailyLog{}).Select("id").Where("user_id = ?", userID)
	return s.db.WithContext(ctx).
		Where("id = ? AND log_id IN (?)", entryID, logs).
		Delete(&models.CalorieEntry{}).Error
}

// broadcast pushes a write notification to websocket subscribers. Advisory
// only; it never affects the write path.
func (s *LogService) broadcast(userID uint, metric string, date time.Time) {
	s.log.Debug("logged metric", zap.String("metric", metric), zap.Uint("user_id", userID))
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, models.LogEvent{Metric: metric, Date: date.Format("2006-01-02")})
}
