package database

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner is returned when a mutation requires the acting user to
	// be the event's creator and they are not.
	ErrNotOwner = errors.New("not the event creator")
	// ErrInvalidInput is returned when a form fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// MemoryDSN opens a shared in-memory database: every connection in the pool
// sees the same data, and everything is gone when the process exits.
const MemoryDSN = "file:campusevents?mode=memory&cache=shared"

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	location TEXT NOT NULL,
	category TEXT NOT NULL,
	organizer TEXT NOT NULL,
	attendees TEXT NOT NULL DEFAULT '[]',
	max_attendees INTEGER NOT NULL,
	created_by TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rsvps (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL UNIQUE,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitDB opens the database, applies the schema and returns the connection.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	// An in-memory database vanishes when its last connection closes, so
	// keep exactly one open for the life of the process.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, err
	}

	return db, nil
}
