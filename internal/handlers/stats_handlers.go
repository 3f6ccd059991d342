package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/app/internal/database"
	"github.com/campus-events/app/internal/models"
	"github.com/campus-events/app/internal/query"
)

// CategoryStats returns per-category totals, upcoming counts and attendee
// sums. Every category is present even with zero events.
func CategoryStats(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := database.ListEvents(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
			return
		}
		c.JSON(http.StatusOK, query.CategoryStats(events, time.Now()))
	}
}

// ListCategories returns the closed set of event categories.
func ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.AllCategories)
	}
}

// Health is a liveness probe.
func Health(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
