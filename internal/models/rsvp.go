package models

import "time"

// RSVPStatus is the current user's response to an event.
type RSVPStatus string

const (
	RSVPStatusGoing      RSVPStatus = "Going"
	RSVPStatusInterested RSVPStatus = "Interested"
	RSVPStatusNotGoing   RSVPStatus = "Not Going"
)

// AllRSVPStatuses lists the selectable statuses in display order.
var AllRSVPStatuses = []RSVPStatus{
	RSVPStatusGoing,
	RSVPStatusInterested,
	RSVPStatusNotGoing,
}

// Valid reports whether s is one of the known statuses.
func (s RSVPStatus) Valid() bool {
	for _, known := range AllRSVPStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RSVP holds one response. EventID is unique per store: a second response
// to the same event overwrites the first.
type RSVP struct {
	ID        int64      `json:"-"`
	EventID   int64      `json:"eventId"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// EventWithRSVP is an event joined with the user's response. It exists only
// as a query result and is never stored.
type EventWithRSVP struct {
	Event
	RSVPStatus RSVPStatus `json:"rsvpStatus,omitempty"`
}
