package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campus-events/app/internal/models"
)

func TestRSVPFlow(t *testing.T) {
	r, _, teardown := setupTestServer(t)
	defer teardown()

	t.Run("submit then read back immediately", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/5/rsvp", "", map[string]string{"status": "Going"})
		if w.Code != http.StatusOK {
			t.Fatalf("status got = %v, want 200\nbody: %s", w.Code, w.Body.String())
		}

		var history []*models.EventWithRSVP
		resp := doRequest(t, r, http.MethodGet, "/rsvps", "", nil)
		if err := json.Unmarshal(resp.Body.Bytes(), &history); err != nil {
			t.Fatalf("Failed to decode rsvps: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("rsvps len = %v, want 1", len(history))
		}
		if history[0].ID != 5 || history[0].RSVPStatus != models.RSVPStatusGoing {
			t.Errorf("rsvps[0] got = id %v status %v, want id 5 Going", history[0].ID, history[0].RSVPStatus)
		}
	})

	t.Run("history keeps first-response order", func(t *testing.T) {
		doRequest(t, r, http.MethodPost, "/events/2/rsvp", "", map[string]string{"status": "Interested"})
		doRequest(t, r, http.MethodPost, "/events/5/rsvp", "", map[string]string{"status": "Not Going"})

		var history []*models.EventWithRSVP
		resp := doRequest(t, r, http.MethodGet, "/rsvps", "", nil)
		if err := json.Unmarshal(resp.Body.Bytes(), &history); err != nil {
			t.Fatalf("Failed to decode rsvps: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("rsvps len = %v, want 2", len(history))
		}
		if history[0].ID != 5 || history[0].RSVPStatus != models.RSVPStatusNotGoing {
			t.Errorf("rsvps[0] got = id %v status %v, want id 5 Not Going", history[0].ID, history[0].RSVPStatus)
		}
		if history[1].ID != 2 {
			t.Errorf("rsvps[1] got = id %v, want 2", history[1].ID)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/1/rsvp", "", map[string]string{"status": "Perhaps"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status got = %v, want 400", w.Code)
		}
	})

	t.Run("nonexistent event id accepted but never surfaces", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/424242/rsvp", "", map[string]string{"status": "Going"})
		if w.Code != http.StatusOK {
			t.Errorf("status got = %v, want 200", w.Code)
		}

		var history []*models.EventWithRSVP
		resp := doRequest(t, r, http.MethodGet, "/rsvps", "", nil)
		if err := json.Unmarshal(resp.Body.Bytes(), &history); err != nil {
			t.Fatalf("Failed to decode rsvps: %v", err)
		}
		for _, entry := range history {
			if entry.ID == 424242 {
				t.Errorf("dangling rsvp surfaced in history")
			}
		}
	})
}

func TestStatsEndpoint(t *testing.T) {
	r, _, teardown := setupTestServer(t)
	defer teardown()

	w := doRequest(t, r, http.MethodGet, "/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status got = %v, want 200", w.Code)
	}

	var stats map[models.Category]models.CategoryStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}
	if len(stats) != len(models.AllCategories) {
		t.Errorf("stats len = %v, want %v", len(stats), len(models.AllCategories))
	}
	if got := stats[models.CategoryAcademic].Total; got != 2 {
		t.Errorf("Academic total got = %v, want 2", got)
	}
	if got := stats[models.CategoryAcademic].TotalAttendees; got != 7 {
		t.Errorf("Academic totalAttendees got = %v, want 7", got)
	}
	if _, ok := stats[models.CategorySocial]; !ok {
		t.Errorf("Social missing from stats; zero-event categories must appear")
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r, _, teardown := setupTestServer(t)
	defer teardown()

	w := doRequest(t, r, http.MethodGet, "/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status got = %v, want 200", w.Code)
	}

	var categories []models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("Failed to decode categories: %v", err)
	}
	if len(categories) != 5 {
		t.Errorf("categories len = %v, want 5", len(categories))
	}
}

func TestHealthEndpoint(t *testing.T) {
	r, _, teardown := setupTestServer(t)
	defer teardown()

	w := doRequest(t, r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status got = %v, want 200", w.Code)
	}
}
