package models

import "time"

// Request payloads for the logging endpoints. Numeric fields are pointers so
// an absent field is distinguishable from a zero value and can be rejected.

type WeightLogRequest struct {
	WeightKg *float64 `json:"weight_kg"`
	Date     string   `json:"date,omitempty"`
}

type CalorieLogRequest struct {
	Calories *int   `json:"calories"`
	Note     string `json:"note,omitempty"`
	Date     string `json:"date,omitempty"`
}

type CardioLogRequest struct {
	DurationMin *int   `json:"duration_min"`
	Date        string `json:"date,omitempty"`
}

type MoodLogRequest struct {
	Mood *int   `json:"mood"`
	Date string `json:"date,omitempty"`
}

type MotivationLogRequest struct {
	Motivation *int   `json:"motivation"`
	Date       string `json:"date,omitempty"`
}

type SleepLogRequest struct {
	SleepMin *int   `json:"sleep_min"`
	Date     string `json:"date,omitempty"`
}

type BudgetLogRequest struct {
	KcalBudgeted *int   `json:"kcal_budgeted"`
	Date         string `json:"date,omitempty"`
}

// LogResponse is the uniform write-endpoint result.
type LogResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BMIPoint is one day in the 30-day BMI trend. BMI is nil for days without a
// recorded weight.
type BMIPoint struct {
	Date time.Time `json:"date"`
	BMI  *float64  `json:"bmi"`
}

// DailySummary echoes the requested date and whatever metrics the daily log
// holds for it. All metrics are nil when no record exists.
type DailySummary struct {
	LogDate          time.Time `json:"log_date"`
	WeightKg         *float64  `json:"weight_kg,omitempty"`
	KcalEstimated    *int      `json:"kcal_estimated,omitempty"`
	KcalBudgeted     *int      `json:"kcal_budgeted,omitempty"`
	Mood             *int      `json:"mood,omitempty"`
	Motivation       *int      `json:"motivation,omitempty"`
	TotalActivityMin *int      `json:"total_activity_min,omitempty"`
	SleepDuration    *int      `json:"sleep_duration,omitempty"`
}

type CaloriesTodayResponse struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"total_calories"`
}

// FoodEntry is one calorie entry shaped for JSON output.
type FoodEntry struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Calories  int       `json:"calories"`
	Note      *string   `json:"note,omitempty"`
}

// Weekly is the rollup for one ISO week (Monday start).
type Weekly struct {
	WeekStart      time.Time `json:"week_start"`
	AvgWeight      *float64  `json:"avg_weight,omitempty"`
	TotalBudgeted  *int      `json:"total_budgeted,omitempty"`
	TotalEstimated *int      `json:"total_estimated,omitempty"`
	TotalDeficit   *int      `json:"total_deficit,omitempty"`
}

// GoalProjection estimates when the milestone and goal weights will be
// reached, extrapolating the recent daily weight change. Dates are nil when
// the trend is flat or pointing the wrong way.
type GoalProjection struct {
	CurrentWeight   float64    `json:"current_weight"`
	DailyChange     float64    `json:"daily_change"`
	MilestoneWeight float64    `json:"milestone_weight"`
	MilestoneDays   *int       `json:"milestone_days,omitempty"`
	MilestoneDate   *time.Time `json:"milestone_date,omitempty"`
	GoalWeight      float64    `json:"goal_weight"`
	GoalDays        *int       `json:"goal_days,omitempty"`
	GoalDate        *time.Time `json:"goal_date,omitempty"`
}

// LogEvent is broadcast over the websocket feed after a successful write.
type LogEvent struct {
	Metric string `json:"metric"`
	Date   string `json:"date"`
}
