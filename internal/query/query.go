// Package query computes the derived views the UI renders: filtered event
// lists, the user's RSVP history and per-category statistics. Everything
// here is a pure function over store snapshots; nothing is cached and no
// input is ever mutated.
package query

import (
	"strings"
	"time"

	"github.com/campus-events/app/internal/models"
)

// CategoryAll is the category filter sentinel that matches every event.
const CategoryAll = "All"

// FilterEvents returns the events matching all three filter clauses, in the
// order they appear in the input.
//
// The search term matches case-insensitively against title or description;
// an empty term matches everything. Category must match exactly unless it
// is "All" or empty. Date must match the event date string exactly unless
// it is empty.
func FilterEvents(events []*models.Event, search, category, date string) []*models.Event {
	search = strings.ToLower(search)

	filtered := make([]*models.Event, 0, len(events))
	for _, event := range events {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(event.Title), search) ||
			strings.Contains(strings.ToLower(event.Description), search)
		matchesCategory := category == "" || category == CategoryAll ||
			string(event.Category) == category
		matchesDate := date == "" || event.Date == date

		if matchesSearch && matchesCategory && matchesDate {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// MyRSVPs joins each RSVP entry with its event, in the order the responses
// were first given. Entries whose event no longer exists are dropped, so a
// dangling RSVP never surfaces even if a delete cascade were skipped.
func MyRSVPs(rsvps []*models.RSVP, events []*models.Event) []*models.EventWithRSVP {
	byID := make(map[int64]*models.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	joined := make([]*models.EventWithRSVP, 0, len(rsvps))
	for _, rsvp := range rsvps {
		event, ok := byID[rsvp.EventID]
		if !ok {
			continue
		}
		joined = append(joined, &models.EventWithRSVP{
			Event:      *event,
			RSVPStatus: rsvp.Status,
		})
	}
	return joined
}

// CategoryStats aggregates events per category. Every category appears in
// the result, with zero stats when it has no events. An event counts as
// upcoming when its date is now's calendar date or later; now is resolved
// once by the caller so the whole batch shares a consistent today.
func CategoryStats(events []*models.Event, now time.Time) map[models.Category]models.CategoryStats {
	today := now.Format(models.DateLayout)

	stats := make(map[models.Category]models.CategoryStats, len(models.AllCategories))
	for _, category := range models.AllCategories {
		stats[category] = models.CategoryStats{}
	}

	for _, event := range events {
		s := stats[event.Category]
		s.Total++
		// Date strings in ISO form order the same way lexically as they
		// do as calendar dates.
		if event.Date >= today {
			s.Upcoming++
		}
		s.TotalAttendees += len(event.Attendees)
		stats[event.Category] = s
	}
	return stats
}
