package database

import (
	"database/sql"

	"github.com/campus-events/app/internal/models"
)

var seedEvents = []*models.Event{
	{
		Title:        "Tech Talk: AI in Education",
		Description:  "Join us for an insightful discussion on how artificial intelligence is transforming the educational landscape.",
		Date:         "2024-01-15",
		Time:         "14:00",
		Location:     "Engineering Building, Room 101",
		Category:     models.CategoryAcademic,
		Organizer:    "Dr. Sarah Johnson",
		Attendees:    []string{"Alice Smith", "Bob Wilson", "Charlie Brown", "Diana Prince"},
		MaxAttendees: 50,
		CreatedBy:    "Dr. Sarah Johnson",
	},
	{
		Title:        "Basketball Championship Finals",
		Description:  "Cheer for our campus team in the final match of the season!",
		Date:         "2024-01-18",
		Time:         "19:00",
		Location:     "Sports Complex Arena",
		Category:     models.CategorySports,
		Organizer:    "Athletics Department",
		Attendees:    []string{"Mike Davis", "Lisa Garcia", "Tom Anderson"},
		MaxAttendees: 200,
		CreatedBy:    "Athletics Department",
	},
	{
		Title:        "Cultural Night: International Food Festival",
		Description:  "Experience flavors from around the world prepared by our international student community.",
		Date:         "2024-01-20",
		Time:         "18:00",
		Location:     "Student Union Hall",
		Category:     models.CategoryCultural,
		Organizer:    "International Student Association",
		Attendees:    []string{"Emma Thompson", "James Rodriguez", "Priya Patel", "Ahmed Hassan", "Sophie Chen"},
		MaxAttendees: 100,
		CreatedBy:    "International Student Association",
	},
	{
		Title:        "Career Fair 2024",
		Description:  "Meet with top employers and explore internship and job opportunities.",
		Date:         "2024-01-25",
		Time:         "10:00",
		Location:     "Main Campus Quad",
		Category:     models.CategoryAcademic,
		Organizer:    "Career Services",
		Attendees:    []string{"John Doe", "Jane Smith", "Robert Johnson"},
		MaxAttendees: 300,
		CreatedBy:    "Career Services",
	},
	{
		Title:        "Spring Concert: Campus Band",
		Description:  "Enjoy an evening of music performed by our talented campus musicians.",
		Date:         "2024-01-28",
		Time:         "20:00",
		Location:     "Auditorium",
		Category:     models.CategoryEntertainment,
		Organizer:    "Music Department",
		Attendees:    []string{"Mary Wilson", "David Lee", "Anna Garcia"},
		MaxAttendees: 150,
		CreatedBy:    "Akash Patel",
	},
}

// SeedEvents loads the launch dataset into an empty store. A store that
// already has events is left alone.
func SeedEvents(db *sql.DB) error {
	n, err := CountEvents(db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, event := range seedEvents {
		if _, err := insertEvent(db, event); err != nil {
			return err
		}
	}
	return nil
}
