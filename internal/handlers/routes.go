package handlers

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campus-events/app/internal/config"
	"github.com/campus-events/app/pkg/logger"
)

// SetupRoutes registers middleware and every API route on the engine.
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config, log *logger.Logger) {
	r.Use(RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-User"},
	}))
	r.Use(Identity(cfg.CurrentUser))

	r.GET("/healthz", Health(db))
	r.GET("/categories", ListCategories())

	events := r.Group("/events")
	{
		events.GET("", ListEvents(db))
		events.POST("", CreateEvent(db))
		events.GET("/:id", GetEvent(db))
		events.DELETE("/:id", DeleteEvent(db))
		events.POST("/:id/rsvp", SubmitRSVP(db))
	}

	r.GET("/rsvps", MyRSVPs(db))
	r.GET("/stats", CategoryStats(db))
}
