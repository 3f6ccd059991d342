package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campus-events/app/internal/models"
)

// defaultMaxAttendees is used when a create form omits the field.
const defaultMaxAttendees = 50

// CreateEvent validates the form, assigns a fresh id and inserts the event.
// Organizer and CreatedBy are both set to the acting user, and the attendee
// list starts empty. Duplicate titles, dates and locations are permitted.
func CreateEvent(db *sql.DB, form models.NewEventForm, actingUser string) (*models.Event, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	maxAttendees := form.MaxAttendees
	if maxAttendees == 0 {
		maxAttendees = defaultMaxAttendees
	}

	event := &models.Event{
		Title:        form.Title,
		Description:  form.Description,
		Date:         form.Date,
		Time:         form.Time,
		Location:     form.Location,
		Category:     form.Category,
		Organizer:    actingUser,
		Attendees:    []string{},
		MaxAttendees: maxAttendees,
		CreatedBy:    actingUser,
	}

	id, err := insertEvent(db, event)
	if err != nil {
		return nil, err
	}
	return GetEventByID(db, id)
}

func validateForm(form models.NewEventForm) error {
	required := []struct{ field, value string }{
		{"title", form.Title},
		{"date", form.Date},
		{"time", form.Time},
		{"location", form.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, r.field)
		}
	}
	if _, err := time.Parse(models.DateLayout, form.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s format", ErrInvalidInput, models.DateLayout)
	}
	if _, err := time.Parse(models.TimeLayout, form.Time); err != nil {
		return fmt.Errorf("%w: time must be in %s format", ErrInvalidInput, models.TimeLayout)
	}
	if !form.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, form.Category)
	}
	// The form UI used to coerce bad input to 0 and let it through; an
	// event nobody can attend is rejected here instead.
	if form.MaxAttendees < 0 {
		return fmt.Errorf("%w: maxAttendees must be positive", ErrInvalidInput)
	}
	return nil
}

// insertEvent writes the event and returns its assigned id. Ids come from
// AUTOINCREMENT, so they stay unique even after deletions.
func insertEvent(db *sql.DB, event *models.Event) (int64, error) {
	attendees, err := json.Marshal(event.Attendees)
	if err != nil {
		return 0, err
	}

	stmt, err := db.Prepare(`
		INSERT INTO events(title, description, date, time, location, category, organizer, attendees, max_attendees, created_by)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(
		event.Title, event.Description, event.Date, event.Time, event.Location,
		event.Category, event.Organizer, string(attendees), event.MaxAttendees, event.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const eventColumns = "id, title, description, date, time, location, category, organizer, attendees, max_attendees, created_by, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	event := &models.Event{}
	var attendees string
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.Date, &event.Time,
		&event.Location, &event.Category, &event.Organizer, &attendees,
		&event.MaxAttendees, &event.CreatedBy, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(attendees), &event.Attendees); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEventByID retrieves a single event, or ErrNotFound.
func GetEventByID(db *sql.DB, id int64) (*models.Event, error) {
	row := db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves all events in insertion order.
func ListEvents(db *sql.DB) ([]*models.Event, error) {
	rows, err := db.Query("SELECT " + eventColumns + " FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// CountEvents returns the number of stored events.
func CountEvents(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// DeleteEvent removes the event and any RSVP referencing it in a single
// transaction, so a dangling RSVP is never observable. Only the creator may
// delete; anyone else gets ErrNotOwner. Deleting an id that does not exist
// is a no-op.
func DeleteEvent(db *sql.DB, id int64, actingUser string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var createdBy string
	err = tx.QueryRow("SELECT created_by FROM events WHERE id = ?", id).Scan(&createdBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if createdBy != actingUser {
		return ErrNotOwner
	}

	if _, err = tx.Exec("DELETE FROM rsvps WHERE event_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM events WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}
