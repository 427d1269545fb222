package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func createInterview(t *testing.T, h http.Handler, token, candidateID string, status models.InterviewStatus, start time.Time) models.Interview {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews", token, map[string]any{
		"title":        "Backend Screen",
		"startTime":    start,
		"status":       status,
		"streamCallId": "call-" + candidateID,
		"candidateId":  candidateID,
	})
	wantStatus(t, rec, http.StatusCreated)
	var iv models.Interview
	decode(t, rec, &iv)
	return iv
}

func TestCreateInterviewValidation(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/interviews", alice.Token, map[string]any{
		"title":       "Missing candidate",
		"status":      "scheduled",
		"candidateId": "",
	})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/interviews", alice.Token, map[string]any{
		"title":       "Bad status",
		"status":      "paused",
		"candidateId": "c1",
	})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestListMineProbe(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	createInterview(t, h, alice.Token, bob.User.ExternalID, models.StatusScheduled, time.Now().Add(time.Hour))

	// Anonymous probe returns an empty list.
	rec := doJSON(t, h, http.MethodGet, "/api/v1/interviews/mine", "", nil)
	wantStatus(t, rec, http.StatusOK)
	var interviews []models.Interview
	decode(t, rec, &interviews)
	if len(interviews) != 0 {
		t.Fatalf("anonymous probe returned %d interviews", len(interviews))
	}

	// The candidate sees their interview; an uninvolved user does not.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/interviews/mine", bob.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	decode(t, rec, &interviews)
	if len(interviews) != 1 {
		t.Fatalf("candidate sees %d interviews, want 1", len(interviews))
	}
	rec = doJSON(t, h, http.MethodGet, "/api/v1/interviews/mine", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	decode(t, rec, &interviews)
	if len(interviews) != 0 {
		t.Fatalf("interviewer listed as candidate on %d interviews", len(interviews))
	}
}

func TestGetByStreamCallID(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	iv := createInterview(t, h, alice.Token, "c1", models.StatusScheduled, time.Now())

	rec := doJSON(t, h, http.MethodGet, "/api/v1/interviews/stream/"+iv.StreamCallID, "", nil)
	wantStatus(t, rec, http.StatusOK)
	var got models.Interview
	decode(t, rec, &got)
	if got.ID != iv.ID {
		t.Fatalf("got interview %q, want %q", got.ID, iv.ID)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/interviews/stream/nope", "", nil)
	wantStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "null\n" {
		t.Fatalf("unknown stream call = %q, want null", body)
	}
}

func TestUpdateStatusSetsEndTimeOnCompletion(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	iv := createInterview(t, h, alice.Token, "c1", models.StatusScheduled, time.Now())

	rec := doJSON(t, h, http.MethodPatch, "/api/v1/interviews/"+iv.ID+"/status", alice.Token,
		map[string]string{"status": "in_progress"})
	wantStatus(t, rec, http.StatusOK)
	var got models.Interview
	decode(t, rec, &got)
	if got.EndTime != nil {
		t.Fatal("endTime set before completion")
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/interviews/"+iv.ID+"/status", alice.Token,
		map[string]string{"status": "completed"})
	wantStatus(t, rec, http.StatusOK)
	decode(t, rec, &got)
	if got.Status != models.StatusCompleted || got.EndTime == nil {
		t.Fatalf("completion: status=%q endTime=%v", got.Status, got.EndTime)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/interviews/unknown/status", alice.Token,
		map[string]string{"status": "completed"})
	wantStatus(t, rec, http.StatusNotFound)
}

func TestListScheduled(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	early := createInterview(t, h, alice.Token, bob.User.ExternalID, models.StatusScheduled, time.Now().Add(time.Hour))
	late := createInterview(t, h, alice.Token, bob.User.ExternalID, models.StatusUpcoming, time.Now().Add(2*time.Hour))
	done := createInterview(t, h, alice.Token, bob.User.ExternalID, models.StatusCompleted, time.Now().Add(-time.Hour))

	rec := doJSON(t, h, http.MethodGet, "/api/v1/interviews/scheduled", bob.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var interviews []models.Interview
	decode(t, rec, &interviews)
	if len(interviews) != 2 {
		t.Fatalf("got %d scheduled interviews, want 2", len(interviews))
	}
	if interviews[0].ID != late.ID || interviews[1].ID != early.ID {
		t.Fatal("scheduled interviews not sorted by start time desc")
	}
	for _, iv := range interviews {
		if iv.ID == done.ID {
			t.Fatal("completed interview listed as scheduled")
		}
	}
}
