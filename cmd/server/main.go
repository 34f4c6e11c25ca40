package main

import (
	"os"

	"github.com/Slaymish/HealthDashboard/config"
	"github.com/Slaymish/HealthDashboard/pkg/logger"
	"github.com/Slaymish/HealthDashboard/routes"

	"go.uber.org/zap"
)

func main() {
	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	config.InitDB()

	r := routes.SetupRouter(config.DB, config.DefaultUserID())

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	baseLogger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		baseLogger.Fatal("server exited", zap.Error(err))
	}
}
