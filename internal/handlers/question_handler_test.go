package handlers_test

import (
	"net/http"
	"testing"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func createQuestion(t *testing.T, h http.Handler, token, interviewID string) models.CustomQuestion {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/questions", token, map[string]any{
		"title":       "Two Sum",
		"description": "Find two numbers adding to the target.",
		"interviewId": interviewID,
		"starterCode": map[string]string{
			"javascript": "function twoSum(nums, target) {}",
			"python":     "def two_sum(nums, target):",
			"java":       "int[] twoSum(int[] nums, int target) {}",
		},
		"examples": []map[string]string{
			{"input": "[2,7], 9", "output": "[0,1]"},
		},
	})
	wantStatus(t, rec, http.StatusCreated)
	var q models.CustomQuestion
	decode(t, rec, &q)
	return q
}

func TestCreateAndListQuestions(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	created := createQuestion(t, h, alice.Token, "iv1")
	if created.InterviewerID != alice.User.ExternalID {
		t.Fatalf("interviewerId = %q, want caller subject", created.InterviewerID)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/questions/interview/iv1", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var questions []models.CustomQuestion
	decode(t, rec, &questions)
	if len(questions) != 1 || questions[0].Title != "Two Sum" {
		t.Fatalf("unexpected listing: %+v", questions)
	}
}

// Anonymous listing is a probe: empty list, not 401.
func TestListQuestionsAnonymous(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	createQuestion(t, h, alice.Token, "iv1")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/questions/interview/iv1", "", nil)
	wantStatus(t, rec, http.StatusOK)
	var questions []models.CustomQuestion
	decode(t, rec, &questions)
	if len(questions) != 0 {
		t.Fatalf("anonymous probe returned %d questions, want 0", len(questions))
	}
}

func TestDeleteQuestionOwnershipOnly(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	q := createQuestion(t, h, alice.Token, "iv1")

	rec := doJSON(t, h, http.MethodDelete, "/api/v1/questions/"+q.ID, bob.Token, nil)
	wantStatus(t, rec, http.StatusUnauthorized)

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/questions/"+q.ID, alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/questions/"+q.ID, alice.Token, nil)
	wantError(t, rec, http.StatusNotFound, "Question not found")
}
