package controllers

import (
	"net/http"
	"time"

	"github.com/Slaymish/HealthDashboard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsController serves the read-only query endpoints.
type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

func internalError(c *gin.Context, err error) {
	zap.L().Error("query failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// queryDate parses an optional date query parameter. nil means "today".
func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + ", use YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

// BMITrend returns the 30-day BMI series ending today, gaps included.
func (h *StatsController) BMITrend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	series, err := h.Svc.BMITrend(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *StatsController) DailySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}

	sum, err := h.Svc.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *StatsController) CaloriesToday(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.CaloriesToday(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) Food(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.Svc.FoodToday(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// WeeklySummary rolls up the ISO week of ?start_date= (default: this week).
func (h *StatsController) WeeklySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := queryDate(c, "start_date")
	if !ok {
		return
	}

	wk, err := h.Svc.Weekly(c.Request.Context(), userID, date)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, wk)
}

func (h *StatsController) Goals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	gp, err := h.Svc.GoalProjection(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gp)
}
