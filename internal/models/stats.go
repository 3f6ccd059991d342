package models

// CategoryStats aggregates one category's events. Upcoming counts events
// dated today or later.
type CategoryStats struct {
	Total          int `json:"total"`
	Upcoming       int `json:"upcoming"`
	TotalAttendees int `json:"totalAttendees"`
}
