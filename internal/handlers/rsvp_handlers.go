package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/app/internal/database"
	"github.com/campus-events/app/internal/models"
	"github.com/campus-events/app/internal/query"
)

// SubmitRSVP records the user's response to an event. The id is not
// required to exist: a response to an unknown event is stored but never
// shows up in any view.
func SubmitRSVP(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		var input struct {
			Status models.RSVPStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := database.SetRSVP(db, eventID, input.Status); err != nil {
			c.JSON(statusFromError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"eventId": eventID, "status": input.Status})
	}
}

// MyRSVPs returns the user's RSVP history: every responded-to event that
// still exists, in the order the responses were first given.
func MyRSVPs(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rsvps, err := database.ListRSVPs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch rsvps"})
			return
		}
		events, err := database.ListEvents(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
			return
		}

		c.JSON(http.StatusOK, query.MyRSVPs(rsvps, events))
	}
}
