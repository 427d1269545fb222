package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func TestAdminEndpointsRejectNonAdmins(t *testing.T) {
	h, _ := newTestServer(t)
	register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	for path, msg := range map[string]string{
		"/api/v1/admin/stats":           "Only admins can view system stats",
		"/api/v1/admin/activity":        "Only admins can view activity logs",
		"/api/v1/admin/mock-interviews": "Only admins can view all mock interviews",
	} {
		rec := doJSON(t, h, http.MethodGet, path, bob.Token, nil)
		wantError(t, rec, http.StatusUnauthorized, msg)
	}
}

func TestAdminStats(t *testing.T) {
	h, _ := newTestServer(t)
	admin := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	createInterview(t, h, admin.Token, bob.User.ExternalID, models.StatusScheduled, time.Now().Add(time.Hour))
	createInterview(t, h, admin.Token, bob.User.ExternalID, models.StatusCompleted, time.Now().Add(-time.Hour))
	createQuestion(t, h, admin.Token, "iv1")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/admin/stats", admin.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	var stats struct {
		TotalUsers  int `json:"totalUsers"`
		UsersByRole struct {
			Candidates int `json:"candidates"`
			Admins     int `json:"admins"`
		} `json:"usersByRole"`
		TotalInterviews    int `json:"totalInterviews"`
		InterviewsByStatus struct {
			Scheduled int `json:"scheduled"`
			Completed int `json:"completed"`
		} `json:"interviewsByStatus"`
		TotalCustomQuestions int `json:"totalCustomQuestions"`
	}
	decode(t, rec, &stats)

	if stats.TotalUsers != 2 || stats.UsersByRole.Admins != 1 || stats.UsersByRole.Candidates != 1 {
		t.Fatalf("user stats: %+v", stats)
	}
	if stats.TotalInterviews != 2 || stats.InterviewsByStatus.Scheduled != 1 || stats.InterviewsByStatus.Completed != 1 {
		t.Fatalf("interview stats: %+v", stats)
	}
	if stats.TotalCustomQuestions != 1 {
		t.Fatalf("question count = %d, want 1", stats.TotalCustomQuestions)
	}
}

func TestAdminRecentActivityCapped(t *testing.T) {
	h, _ := newTestServer(t)
	admin := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	var lastInterview models.Interview
	for i := 0; i < 8; i++ {
		lastInterview = createInterview(t, h, admin.Token, bob.User.ExternalID, models.StatusCompleted,
			time.Now().Add(time.Duration(-i)*time.Hour))
	}
	for i := 0; i < 5; i++ {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/comments", admin.Token, map[string]any{
			"interviewId": lastInterview.ID,
			"content":     "note",
			"rating":      3,
		})
		wantStatus(t, rec, http.StatusCreated)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/admin/activity", admin.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var activities []struct {
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
	}
	decode(t, rec, &activities)

	if len(activities) != 10 {
		t.Fatalf("got %d activities, want 10", len(activities))
	}
	for i := 1; i < len(activities); i++ {
		if activities[i].Timestamp.After(activities[i-1].Timestamp) {
			t.Fatal("activity feed not sorted newest first")
		}
	}
	types := map[string]bool{}
	for _, a := range activities {
		types[a.Type] = true
	}
	if !types["interview"] || !types["feedback"] {
		t.Fatalf("feed missing a type: %v", types)
	}
}

func TestAdminAllMockInterviewsJoinsOwner(t *testing.T) {
	h, _ := newTestServer(t)
	admin := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	createMock(t, h, bob.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodGet, "/api/v1/admin/mock-interviews", admin.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var mocks []struct {
		models.MockInterview
		UserName  string `json:"userName"`
		UserEmail string `json:"userEmail"`
	}
	decode(t, rec, &mocks)

	if len(mocks) != 1 {
		t.Fatalf("got %d mock interviews, want 1", len(mocks))
	}
	if mocks[0].UserName != "Bob" || mocks[0].UserEmail != "bob@example.com" {
		t.Fatalf("owner join: %q/%q", mocks[0].UserName, mocks[0].UserEmail)
	}
}
