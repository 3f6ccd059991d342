package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-events/app/internal/config"
	"github.com/campus-events/app/internal/database"
	"github.com/campus-events/app/internal/handlers"
	"github.com/campus-events/app/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.InitDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("initializing database", zap.Error(err))
	}
	defer db.Close()

	if err := database.SeedEvents(db); err != nil {
		log.Fatal("seeding events", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	handlers.SetupRoutes(r, db, cfg, log)

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("user", cfg.CurrentUser),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
