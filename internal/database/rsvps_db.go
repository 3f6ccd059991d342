package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campus-events/app/internal/models"
)

// SetRSVP records the current user's response to an event, overwriting any
// earlier one (last write wins, no history). The event id is not checked
// against the events table; responses to unknown ids are stored and simply
// never surface in joined views.
func SetRSVP(db *sql.DB, eventID int64, status models.RSVPStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown RSVP status %q", ErrInvalidInput, status)
	}

	stmt, err := db.Prepare(`
		INSERT INTO rsvps (event_id, status, created_at, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(event_id) DO UPDATE SET
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(eventID, status)
	return err
}

// GetRSVPForEvent retrieves the user's response to one event, or ErrNotFound.
func GetRSVPForEvent(db *sql.DB, eventID int64) (*models.RSVP, error) {
	rsvp := &models.RSVP{}
	row := db.QueryRow(`
		SELECT id, event_id, status, created_at, updated_at
		FROM rsvps WHERE event_id = ?
	`, eventID)
	err := row.Scan(&rsvp.ID, &rsvp.EventID, &rsvp.Status, &rsvp.CreatedAt, &rsvp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rsvp, nil
}

// ListRSVPs retrieves every response in the order the user first gave one.
// The surrogate id is assigned on first insert and survives status
// overwrites, so the ordering is stable.
func ListRSVPs(db *sql.DB) ([]*models.RSVP, error) {
	rows, err := db.Query(`
		SELECT id, event_id, status, created_at, updated_at
		FROM rsvps ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []*models.RSVP
	for rows.Next() {
		rsvp := &models.RSVP{}
		err := rows.Scan(&rsvp.ID, &rsvp.EventID, &rsvp.Status, &rsvp.CreatedAt, &rsvp.UpdatedAt)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rsvps, nil
}

// DeleteRSVPForEvent removes the response to an event if one exists. It is
// the cascade half of event deletion and is idempotent.
func DeleteRSVPForEvent(db *sql.DB, eventID int64) error {
	_, err := db.Exec("DELETE FROM rsvps WHERE event_id = ?", eventID)
	return err
}
