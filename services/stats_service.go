package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Slaymish/HealthDashboard/models"
	"github.com/Slaymish/HealthDashboard/utils"

	"gorm.io/gorm"
)

// StatsService serves the read-only projections over daily log history. It
// never writes.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

const bmiTrendDays = 30

// startOfWeek truncates to the Monday of t's ISO week, local midnight.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1))
}

// BMITrend returns one point per day for the 30-day window ending today, in
// ascending date order. The series always has exactly 30 entries; days
// without a recorded weight carry a nil BMI.
func (s *StatsService) BMITrend(ctx context.Context, userID uint) ([]models.BMIPoint, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	end := dayStartLocal(time.Now())
	start := end.AddDate(0, 0, -(bmiTrendDays - 1))

	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, start, end).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	idx := map[string]models.DailyLog{}
	for _, l := range logs {
		idx[l.LogDate.Format("2006-01-02")] = l
	}

	series := make([]models.BMIPoint, 0, bmiTrendDays)
	for i := 0; i < bmiTrendDays; i++ {
		d := start.AddDate(0, 0, i)
		point := models.BMIPoint{Date: d}
		if l, ok := idx[d.Format("2006-01-02")]; ok && l.WeightKg != nil {
			if bmi, err := utils.CalculateBMI(user.HeightCm, *l.WeightKg); err == nil {
				point.BMI = &bmi
			}
		}
		series = append(series, point)
	}
	return series, nil
}

// DailySummary returns the metrics the daily log holds for the given date
// (today when nil). A date with no record is not an error: the date is
// echoed back with all metrics absent.
func (s *StatsService) DailySummary(ctx context.Context, userID uint, date *time.Time) (models.DailySummary, error) {
	day := resolveDate(date)
	out := models.DailySummary{LogDate: day}

	var l models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, day).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return out, nil
		}
		return out, err
	}

	out.WeightKg = l.WeightKg
	out.Mood = l.Mood
	out.Motivation = l.Motivation
	out.TotalActivityMin = l.TotalActivityMin
	out.SleepDuration = l.SleepDuration
	out.KcalBudgeted = l.KcalBudgeted

	total, n, err := s.sumCalories(ctx, userID, day)
	if err != nil {
		return out, err
	}
	if n > 0 {
		out.KcalEstimated = &total
	}
	return out, nil
}

// CaloriesToday sums today's calorie entries, 0 when there are none.
func (s *StatsService) CaloriesToday(ctx context.Context, userID uint) (models.CaloriesTodayResponse, error) {
	today := dayStartLocal(time.Now())
	total, _, err := s.sumCalories(ctx, userID, today)
	if err != nil {
		return models.CaloriesTodayResponse{}, err
	}
	return models.CaloriesTodayResponse{
		Date:          today.Format("2006-01-02"),
		TotalCalories: total,
	}, nil
}

// FoodToday lists today's calorie entries in creation order.
func (s *StatsService) FoodToday(ctx context.Context, userID uint) ([]models.FoodEntry, error) {
	today := dayStartLocal(time.Now())

	var entries []models.CalorieEntry
	if err := s.db.WithContext(ctx).
		Joins("JOIN daily_logs ON daily_logs.id = calorie_entries.log_id").
		Where("daily_logs.user_id = ? AND daily_logs.log_date = ?", userID, today).
		Order("calorie_entries.created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := make([]models.FoodEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.FoodEntry{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			Calories:  e.Calories,
			Note:      e.Note,
		})
	}
	return out, nil
}

// Weekly rolls up the ISO week containing the given date (today when nil):
// average weight, total budgeted and estimated kcal, and the deficit between
// them. A week with no records echoes its start date with nil metrics.
func (s *StatsService) Weekly(ctx context.Context, userID uint, date *time.Time) (models.Weekly, error) {
	weekStart := startOfWeek(resolveDate(date))
	weekEnd := weekStart.AddDate(0, 0, 6)
	out := models.Weekly{WeekStart: weekStart}

	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, weekStart, weekEnd).
		Find(&logs).Error; err != nil {
		return out, err
	}
	if len(logs) == 0 {
		return out, nil
	}

	var weightSum float64
	var weightN, budget int
	var hasBudget bool
	for _, l := range logs {
		if l.WeightKg != nil {
			weightSum += *l.WeightKg
			weightN++
		}
		if l.KcalBudgeted != nil {
			budget += *l.KcalBudgeted
			hasBudget = true
		}
	}
	if weightN > 0 {
		avg := weightSum / float64(weightN)
		out.AvgWeight = &avg
	}
	if hasBudget {
		out.TotalBudgeted = &budget
	}

	var agg struct {
		Total int
		N     int64
	}
	if err := s.db.WithContext(ctx).Model(&models.CalorieEntry{}).
		Joins("JOIN daily_logs ON daily_logs.id = calorie_entries.log_id").
		Where("daily_logs.user_id = ? AND daily_logs.log_date BETWEEN ? AND ?", userID, weekStart, weekEnd).
		Select("COALESCE(SUM(calorie_entries.calories), 0) AS total, COUNT(*) AS n").
		Scan(&agg).Error; err != nil {
		return out, err
	}
	if agg.N > 0 {
		out.TotalEstimated = &agg.Total
	}

	if out.TotalBudgeted != nil && out.TotalEstimated != nil {
		deficit := *out.TotalBudgeted - *out.TotalEstimated
		out.TotalDeficit = &deficit
	}
	return out, nil
}

// GoalProjection extrapolates the recent weight trend toward the user's
// milestone and goal weights. Projection dates stay nil when the trend is
// flat, too sparse, or moving away from the targets.
func (s *StatsService) GoalProjection(ctx context.Context, userID uint) (*models.GoalProjection, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	current, dailyRate, err := s.weightTrend(ctx, userID)
	if err != nil {
		return nil, err
	}

	gp := &models.GoalProjection{
		CurrentWeight:   current,
		DailyChange:     dailyRate,
		MilestoneWeight: user.MilestoneWeightKg,
		GoalWeight:      user.GoalWeightKg,
	}
	if dailyRate == 0 {
		return gp, nil
	}

	now := time.Now()
	project := func(target float64) (*int, *time.Time) {
		if current <= target || dailyRate >= 0 {
			return nil, nil
		}
		days := int(math.Ceil((target - current) / dailyRate))
		if days < 0 {
			return nil, nil
		}
		at := now.AddDate(0, 0, days)
		return &days, &at
	}
	gp.MilestoneDays, gp.MilestoneDate = project(user.MilestoneWeightKg)
	gp.GoalDays, gp.GoalDate = project(user.GoalWeightKg)
	return gp, nil
}

// weightTrend derives the average daily weight change from the last 30
// recorded weights. Rate is 0 when fewer than two points exist.
func (s *StatsService) weightTrend(ctx context.Context, userID uint) (current float64, rate float64, err error) {
	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND weight_kg IS NOT NULL", userID).
		Order("log_date DESC").
		Limit(30).
		Find(&logs).Error; err != nil {
		return 0, 0, err
	}
	if len(logs) == 0 {
		return 0, 0, nil
	}

	// Query is newest-first; the trend reads oldest-first.
	newest, oldest := logs[0], logs[len(logs)-1]
	current = *newest.WeightKg
	if len(logs) < 2 {
		return current, 0, nil
	}
	days := newest.LogDate.Sub(oldest.LogDate).Hours() / 24
	if days == 0 {
		return current, 0, nil
	}
	return current, (current - *oldest.WeightKg) / days, nil
}

// sumCalories totals the calorie entries under the user's log for one date.
func (s *StatsService) sumCalories(ctx context.Context, userID uint, day time.Time) (int, int64, error) {
	var agg struct {
		Total int
		N     int64
	}
	err := s.db.WithContext(ctx).Model(&models.CalorieEntry{}).
		Joins("JOIN daily_logs ON daily_logs.id = calorie_entries.log_id").
		Where("daily_logs.user_id = ? AND daily_logs.log_date = ?", userID, day).
		Select("COALESCE(SUM(calorie_entries.calories), 0) AS total, COUNT(*) AS n").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Total, agg.N, nil
}
