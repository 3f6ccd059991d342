package models

import "time"

// Category classifies an event. The set is closed; anything else is
// rejected at the API boundary.
type Category string

const (
	CategoryAcademic      Category = "Academic"
	CategorySports        Category = "Sports"
	CategoryCultural      Category = "Cultural"
	CategoryEntertainment Category = "Entertainment"
	CategorySocial        Category = "Social"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryAcademic,
	CategorySports,
	CategoryCultural,
	CategoryEntertainment,
	CategorySocial,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	// DateLayout is the calendar-date format events carry ("2024-01-15").
	DateLayout = "2006-01-02"
	// TimeLayout is the local-time format events carry ("14:00").
	TimeLayout = "15:04"
)

type Event struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Category     Category  `json:"category"`
	Organizer    string    `json:"organizer"`
	Attendees    []string  `json:"attendees"`
	MaxAttendees int       `json:"maxAttendees"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewEventForm is the create payload. Title, date, time and location are
// required; MaxAttendees defaults to 50 when omitted.
type NewEventForm struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"required"`
	Time         string   `json:"time" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Category     Category `json:"category" binding:"required"`
	MaxAttendees int      `json:"maxAttendees"`
}
