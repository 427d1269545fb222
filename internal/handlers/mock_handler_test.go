package handlers_test

import (
	"net/http"
	"testing"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func createMock(t *testing.T, h http.Handler, token string, questions []models.QuizQuestion) models.MockInterview {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews", token, map[string]any{
		"title":     "Practice Quiz",
		"questions": questions,
	})
	wantStatus(t, rec, http.StatusCreated)
	var mock models.MockInterview
	decode(t, rec, &mock)
	return mock
}

func twoQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: "a", Explanation: "a it is"},
		{Question: "Q2", Options: []string{"c", "d"}, CorrectAnswer: "d", Explanation: "d it is"},
	}
}

func TestGenerateMockInterview(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPut, "/api/v1/profile", alice.Token, map[string]any{
		"industry":          "software",
		"yearsOfExperience": 3,
		"skills":            []string{"React", "sql"},
	})
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/generate", alice.Token, map[string]any{})
	wantStatus(t, rec, http.StatusCreated)
	var mock models.MockInterview
	decode(t, rec, &mock)

	if mock.Status != models.MockInProgress {
		t.Fatalf("status = %q, want in_progress", mock.Status)
	}
	if mock.Title != "React Developer Interview" {
		t.Fatalf("title = %q", mock.Title)
	}
	// Default block (2) plus the react and sql blocks (5 each).
	if len(mock.Questions) != 12 {
		t.Fatalf("got %d questions, want 12", len(mock.Questions))
	}
}

func TestGenerateTruncatesToRequestedCount(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/generate", alice.Token, map[string]any{
		"category":          "python",
		"numberOfQuestions": 1,
	})
	wantStatus(t, rec, http.StatusCreated)
	var mock models.MockInterview
	decode(t, rec, &mock)
	if len(mock.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(mock.Questions))
	}
	if mock.Title != "python Interview" {
		t.Fatalf("title = %q", mock.Title)
	}
}

func TestMockOwnershipEnforced(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	mock := createMock(t, h, alice.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodGet, "/api/v1/mock-interviews/"+mock.ID, bob.Token, nil)
	wantStatus(t, rec, http.StatusUnauthorized)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", bob.Token,
		map[string]any{"questionIndex": 0, "answer": "a"})
	wantStatus(t, rec, http.StatusUnauthorized)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/complete", bob.Token, nil)
	wantStatus(t, rec, http.StatusUnauthorized)

	// The owner still sees an untouched quiz.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/mock-interviews/"+mock.ID, alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var got models.MockInterview
	decode(t, rec, &got)
	if got.Questions[0].UserAnswer != "" {
		t.Fatalf("answer leaked: %q", got.Questions[0].UserAnswer)
	}
}

func TestSubmitAnswerOutOfRange(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	mock := createMock(t, h, alice.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": 2, "answer": "a"})
	wantError(t, rec, http.StatusBadRequest, "Invalid question index")

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": -1, "answer": "a"})
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestSubmitAnswerOverwrites(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	mock := createMock(t, h, alice.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": 0, "answer": "b"})
	wantStatus(t, rec, http.StatusOK)
	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": 0, "answer": "a"})
	wantStatus(t, rec, http.StatusOK)

	var got models.MockInterview
	decode(t, rec, &got)
	if got.Questions[0].UserAnswer != "a" {
		t.Fatalf("answer = %q, want a", got.Questions[0].UserAnswer)
	}
}

func TestCompleteScoresAnsweredOnly(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	mock := createMock(t, h, alice.Token, twoQuestions())

	// Answer only the first question, correctly; the unanswered second
	// question must not count against the score.
	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": 0, "answer": "a"})
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/complete", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var done models.MockInterview
	decode(t, rec, &done)

	if done.Status != models.MockCompleted {
		t.Fatalf("status = %q, want completed", done.Status)
	}
	if done.Score == nil || *done.Score != 100 {
		t.Fatalf("score = %v, want 100", done.Score)
	}
	if done.CompletedAt == nil {
		t.Fatal("completedAt not set")
	}
	if done.Feedback == "" {
		t.Fatal("feedback not set")
	}
}

func TestCompleteTwiceRejected(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	mock := createMock(t, h, alice.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/complete", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/complete", alice.Token, nil)
	wantError(t, rec, http.StatusConflict, "Interview is already completed")

	rec = doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+mock.ID+"/answers", alice.Token,
		map[string]any{"questionIndex": 0, "answer": "a"})
	wantStatus(t, rec, http.StatusConflict)
}

func TestListInProgress(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	first := createMock(t, h, alice.Token, twoQuestions())
	createMock(t, h, alice.Token, twoQuestions())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/mock-interviews/"+first.ID+"/complete", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/mock-interviews/in-progress", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var mocks []models.MockInterview
	decode(t, rec, &mocks)
	if len(mocks) != 1 {
		t.Fatalf("got %d in-progress interviews, want 1", len(mocks))
	}
	if mocks[0].ID == first.ID {
		t.Fatal("completed interview still listed as in progress")
	}
}
