package routes

import (
	"github.com/Slaymish/HealthDashboard/controllers"
	"github.com/Slaymish/HealthDashboard/middlewares"
	"github.com/Slaymish/HealthDashboard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, defaultUserID uint) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	hub := services.NewRealtimeHub()
	logSvc := services.NewLogService(db, hub, zap.L().Named("svc.log"))
	statsSvc := services.NewStatsService(db)

	logCtl := controllers.NewLogController(logSvc)
	statsCtl := controllers.NewStatsController(statsSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")
	api.Use(middlewares.Identity(defaultUserID))
	{
		api.POST("/log/weight", logCtl.LogWeight)
		api.POST("/log/calorie", logCtl.LogCalorie)
		api.POST("/log/cardio", logCtl.LogCardio)
		api.POST("/log/mood", logCtl.LogMood)
		api.POST("/log/motivation", logCtl.LogMotivation)
		api.POST("/log/sleep", logCtl.LogSleep)
		api.POST("/log/budget", logCtl.LogBudget)

		api.GET("/bmi", statsCtl.BMITrend)
		api.GET("/summary/daily", statsCtl.DailySummary)
		api.GET("/summary/weekly", statsCtl.WeeklySummary)
		api.GET("/calories/today", statsCtl.CaloriesToday)
		api.GET("/food", statsCtl.Food)
		api.DELETE("/food", logCtl.DeleteFood)
		api.GET("/goals", statsCtl.Goals)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.Identity(defaultUserID))
	ws.GET("", rtCtl.LogFeedWS)

	return r
}
