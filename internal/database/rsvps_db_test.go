package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/campus-events/app/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// setupTestDBForRSVPs is a helper, duplicated here for brevity.
func setupTestDBForRSVPs(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	teardown := func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	}
	return db, teardown
}

func TestSetAndGetRSVP(t *testing.T) {
	db, teardown := setupTestDBForRSVPs(t)
	defer teardown()

	if err := SetRSVP(db, 5, models.RSVPStatusGoing); err != nil {
		t.Fatalf("SetRSVP() error = %v", err)
	}

	rsvp, err := GetRSVPForEvent(db, 5)
	if err != nil {
		t.Fatalf("GetRSVPForEvent() error = %v", err)
	}
	if rsvp.Status != models.RSVPStatusGoing {
		t.Errorf("Status got = %v, want %v", rsvp.Status, models.RSVPStatusGoing)
	}
	if rsvp.EventID != 5 {
		t.Errorf("EventID got = %v, want 5", rsvp.EventID)
	}
	if rsvp.CreatedAt.IsZero() || rsvp.UpdatedAt.IsZero() {
		t.Errorf("CreatedAt or UpdatedAt is zero")
	}
}

func TestSetRSVPOverwrites(t *testing.T) {
	db, teardown := setupTestDBForRSVPs(t)
	defer teardown()

	if err := SetRSVP(db, 1, models.RSVPStatusInterested); err != nil {
		t.Fatalf("SetRSVP() error = %v", err)
	}
	if err := SetRSVP(db, 1, models.RSVPStatusNotGoing); err != nil {
		t.Fatalf("SetRSVP() update error = %v", err)
	}

	rsvp, err := GetRSVPForEvent(db, 1)
	if err != nil {
		t.Fatalf("GetRSVPForEvent() error = %v", err)
	}
	if rsvp.Status != models.RSVPStatusNotGoing {
		t.Errorf("Status got = %v, want %v", rsvp.Status, models.RSVPStatusNotGoing)
	}

	rsvps, err := ListRSVPs(db)
	if err != nil {
		t.Fatalf("ListRSVPs() error = %v", err)
	}
	if len(rsvps) != 1 {
		t.Errorf("ListRSVPs() len = %v, want 1 (last write wins, no history)", len(rsvps))
	}
}

func TestSetRSVPRejectsUnknownStatus(t *testing.T) {
	db, teardown := setupTestDBForRSVPs(t)
	defer teardown()

	err := SetRSVP(db, 1, "Definitely")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SetRSVP() error = %v, want ErrInvalidInput", err)
	}
}

func TestListRSVPsKeepsFirstResponseOrder(t *testing.T) {
	db, teardown := setupTestDBForRSVPs(t)
	defer teardown()

	// Respond to 3, then 1, then 2; then change 3. The listing order must
	// stay 3, 1, 2.
	for _, eventID := range []int64{3, 1, 2} {
		if err := SetRSVP(db, eventID, models.RSVPStatusGoing); err != nil {
			t.Fatalf("SetRSVP(%d) error = %v", eventID, err)
		}
	}
	if err := SetRSVP(db, 3, models.RSVPStatusInterested); err != nil {
		t.Fatalf("SetRSVP() update error = %v", err)
	}

	rsvps, err := ListRSVPs(db)
	if err != nil {
		t.Fatalf("ListRSVPs() error = %v", err)
	}
	want := []int64{3, 1, 2}
	if len(rsvps) != len(want) {
		t.Fatalf("ListRSVPs() len = %v, want %v", len(rsvps), len(want))
	}
	for i, eventID := range want {
		if rsvps[i].EventID != eventID {
			t.Errorf("rsvps[%d].EventID got = %v, want %v", i, rsvps[i].EventID, eventID)
		}
	}
	if rsvps[0].Status != models.RSVPStatusInterested {
		t.Errorf("rsvps[0].Status got = %v, want %v", rsvps[0].Status, models.RSVPStatusInterested)
	}
}

func TestDeleteRSVPForEventIdempotent(t *testing.T) {
	db, teardown := setupTestDBForRSVPs(t)
	defer teardown()

	if err := SetRSVP(db, 7, models.RSVPStatusGoing); err != nil {
		t.Fatalf("SetRSVP() error = %v", err)
	}
	if err := DeleteRSVPForEvent(db, 7); err != nil {
		t.Fatalf("DeleteRSVPForEvent() error = %v", err)
	}
	if _, err := GetRSVPForEvent(db, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRSVPForEvent() after delete error = %v, want ErrNotFound", err)
	}
	// Second delete of the same id must not fail.
	if err := DeleteRSVPForEvent(db, 7); err != nil {
		t.Errorf("DeleteRSVPForEvent() repeat error = %v, want nil", err)
	}
}
