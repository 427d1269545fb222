package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/career"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

// MockHandler serves personal practice quizzes. Every operation is
// scoped to the owner; admins read across users through the admin
// endpoints instead.
type MockHandler struct {
	MockInterviews repositories.MockInterviewRepository
	Profiles       repositories.ProfileRepository
}

func NewMockHandler(mocks repositories.MockInterviewRepository, profiles repositories.ProfileRepository) *MockHandler {
	return &MockHandler{MockInterviews: mocks, Profiles: profiles}
}

// ownedMock loads the mock interview and enforces that the caller owns
// it.
func (h *MockHandler) ownedMock(r *http.Request, subject, id string) (*models.MockInterview, error) {
	mock, err := h.MockInterviews.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Mock interview not found")
		}
		return nil, err
	}
	if mock.UserID != subject {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return mock, nil
}

type createMockRequest struct {
	Title     string                `json:"title"`
	Category  string                `json:"category,omitempty"`
	Questions []models.QuizQuestion `json:"questions"`
}

func (h *MockHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req createMockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || len(req.Questions) == 0 {
		utils.Err(w, apperrors.Invalid("title and questions are required"))
		return
	}

	mock := &models.MockInterview{
		UserID:    identity.Subject,
		Title:     req.Title,
		Category:  req.Category,
		Questions: req.Questions,
		Status:    models.MockInProgress,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.MockInterviews.Create(r.Context(), mock); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create mock interview")
		return
	}
	utils.JSON(w, http.StatusCreated, mock)
}

type generateMockRequest struct {
	Category          string `json:"category,omitempty"`
	NumberOfQuestions int    `json:"numberOfQuestions,omitempty"`
}

// GenerateHandler builds a quiz from the caller's skills profile and
// persists it in progress. Callers without a profile get the default
// block only.
func (h *MockHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req generateMockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.NumberOfQuestions < 0 {
		utils.Err(w, apperrors.Invalid("numberOfQuestions must not be negative"))
		return
	}

	profile, err := h.Profiles.GetByUser(r.Context(), identity.Subject)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	title, questions := career.Generate(profile, req.Category, req.NumberOfQuestions)
	mock := &models.MockInterview{
		UserID:    identity.Subject,
		Title:     title,
		Category:  req.Category,
		Questions: questions,
		Status:    models.MockInProgress,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.MockInterviews.Create(r.Context(), mock); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create mock interview")
		return
	}
	utils.JSON(w, http.StatusCreated, mock)
}

func (h *MockHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	mocks, err := h.MockInterviews.ListByUser(r.Context(), identity.Subject)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list mock interviews")
		return
	}
	if mocks == nil {
		mocks = []models.MockInterview{}
	}
	utils.JSON(w, http.StatusOK, mocks)
}

func (h *MockHandler) ListInProgressHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	mocks, err := h.MockInterviews.ListByUserAndStatus(r.Context(), identity.Subject, models.MockInProgress)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list mock interviews")
		return
	}
	if mocks == nil {
		mocks = []models.MockInterview{}
	}
	utils.JSON(w, http.StatusOK, mocks)
}

func (h *MockHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	mock, err := h.ownedMock(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, mock)
}

type submitAnswerRequest struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// SubmitAnswerHandler records an answer on an in-progress quiz.
// Resubmitting an index overwrites the previous answer.
func (h *MockHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	mock, err := h.ownedMock(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}
	if mock.Status == models.MockCompleted {
		utils.Err(w, apperrors.PolicyViolation("Interview is already completed"))
		return
	}
	if req.QuestionIndex < 0 || req.QuestionIndex >= len(mock.Questions) {
		utils.Err(w, apperrors.OutOfRange("Invalid question index"))
		return
	}

	mock.Questions[req.QuestionIndex].UserAnswer = req.Answer
	if err := h.MockInterviews.Update(r.Context(), mock); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to save answer")
		return
	}
	utils.JSON(w, http.StatusOK, mock)
}

// CompleteHandler scores the quiz over answered questions only and
// freezes it. Completing twice is rejected.
func (h *MockHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	mock, err := h.ownedMock(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}
	if mock.Status == models.MockCompleted {
		utils.Err(w, apperrors.PolicyViolation("Interview is already completed"))
		return
	}

	score, feedback := career.Score(mock.Questions)
	now := time.Now().UTC()
	mock.Status = models.MockCompleted
	mock.Score = &score
	mock.Feedback = feedback
	mock.CompletedAt = &now
	if err := h.MockInterviews.Update(r.Context(), mock); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to complete mock interview")
		return
	}
	utils.JSON(w, http.StatusOK, mock)
}
