package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/app/internal/database"
	"github.com/campus-events/app/internal/models"
	"github.com/campus-events/app/internal/query"
)

// statusFromError maps store errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, database.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListEvents returns the event list filtered by the q, category and date
// query parameters, each event annotated with the user's RSVP status when
// one exists.
func ListEvents(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := database.ListEvents(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
			return
		}
		rsvps, err := database.ListRSVPs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch rsvps"})
			return
		}

		filtered := query.FilterEvents(events, c.Query("q"), c.Query("category"), c.Query("date"))

		statusByEvent := make(map[int64]models.RSVPStatus, len(rsvps))
		for _, rsvp := range rsvps {
			statusByEvent[rsvp.EventID] = rsvp.Status
		}

		out := make([]*models.EventWithRSVP, 0, len(filtered))
		for _, event := range filtered {
			out = append(out, &models.EventWithRSVP{
				Event:      *event,
				RSVPStatus: statusByEvent[event.ID],
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetEvent returns a single event by id.
func GetEvent(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		event, err := database.GetEventByID(db, id)
		if err != nil {
			c.JSON(statusFromError(err), gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// CreateEvent adds a new event owned by the acting user.
func CreateEvent(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.NewEventForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event, err := database.CreateEvent(db, form, currentUser(c))
		if err != nil {
			c.JSON(statusFromError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

// DeleteEvent removes an event the acting user created, along with its
// RSVP. Deleting an id that never existed still returns 204.
func DeleteEvent(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		if err := database.DeleteEvent(db, id, currentUser(c)); err != nil {
			c.JSON(statusFromError(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
