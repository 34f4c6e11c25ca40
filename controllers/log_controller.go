package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Slaymish/HealthDashboard/models"
	"github.com/Slaymish/HealthDashboard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogController handles the write endpoints. Every handler follows the same
// shape: resolve identity, bind and validate the payload, delegate to the
// service, answer {success, message}.
type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

// parseDate validates an optional YYYY-MM-DD payload date. Empty means "use
// today", which the service resolves.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func rejectBadDate(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.LogResponse{Success: false, Message: "Invalid date format. Please use YYYY-MM-DD."})
}

func rejectBadPayload(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.LogResponse{Success: false, Message: "Invalid JSON payload: " + err.Error()})
}

func rejectMissing(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, models.LogResponse{Success: false, Message: field + " is required"})
}

// writeResult maps a service error onto the API contract: validation
// failures are client errors, everything else is a storage failure.
func writeResult(c *gin.Context, err error, okMsg string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.LogResponse{Success: true, Message: okMsg})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.LogResponse{Success: false, Message: err.Error()})
	default:
		zap.L().Error("log operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.LogResponse{Success: false, Message: "Database error while writing log entry."})
	}
}

func (h *LogController) LogWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.WeightLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.WeightKg == nil {
		rejectMissing(c, "weight_kg")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogWeight(c.Request.Context(), userID, *body.WeightKg, date), "Weight logged successfully")
}

func (h *LogController) LogCalorie(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.CalorieLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.Calories == nil {
		rejectMissing(c, "calories")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogCalorie(c.Request.Context(), userID, *body.Calories, body.Note, date), "Calorie entry logged successfully")
}

func (h *LogController) LogCardio(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.CardioLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.DurationMin == nil {
		rejectMissing(c, "duration_min")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogCardio(c.Request.Context(), userID, *body.DurationMin, date), "Cardio activity logged successfully")
}

func (h *LogController) LogMood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.MoodLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.Mood == nil {
		rejectMissing(c, "mood")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogMood(c.Request.Context(), userID, *body.Mood, date), "Mood logged successfully")
}

func (h *LogController) LogMotivation(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.MotivationLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.Motivation == nil {
		rejectMissing(c, "motivation")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogMotivation(c.Request.Context(), userID, *body.Motivation, date), "Motivation logged successfully")
}

func (h *LogController) LogSleep(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.SleepLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.SleepMin == nil {
		rejectMissing(c, "sleep_min")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogSleep(c.Request.Context(), userID, *body.SleepMin, date), "Sleep logged successfully")
}

func (h *LogController) LogBudget(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body models.BudgetLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		rejectBadPayload(c, err)
		return
	}
	if body.KcalBudgeted == nil {
		rejectMissing(c, "kcal_budgeted")
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		rejectBadDate(c)
		return
	}

	writeResult(c, h.Svc.LogBudget(c.Request.Context(), userID, *body.KcalBudgeted, date), "Budget logged successfully")
}

// DeleteFood removes one calorie entry by id (?id= query parameter).
func (h *LogController) DeleteFood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.LogResponse{Success: false, Message: "id must be a positive integer"})
		return
	}

	writeResult(c, h.Svc.DeleteCalorieEntry(c.Request.Context(), userID, uint(id)), "Calorie entry deleted")
}
