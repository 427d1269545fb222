package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/middleware"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

type QuestionHandler struct {
	Questions repositories.CustomQuestionRepository
}

func NewQuestionHandler(questions repositories.CustomQuestionRepository) *QuestionHandler {
	return &QuestionHandler{Questions: questions}
}

type createQuestionRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	InterviewID string             `json:"interviewId"`
	StarterCode models.StarterCode `json:"starterCode"`
	Examples    []models.Example   `json:"examples"`
}

func (h *QuestionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || req.InterviewID == "" {
		utils.Err(w, apperrors.Invalid("title and interviewId are required"))
		return
	}

	question := &models.CustomQuestion{
		InterviewID:   req.InterviewID,
		InterviewerID: identity.Subject,
		Title:         req.Title,
		Description:   req.Description,
		StarterCode:   req.StarterCode,
		Examples:      req.Examples,
	}
	if err := h.Questions.Create(r.Context(), question); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create question")
		return
	}
	utils.JSON(w, http.StatusCreated, question)
}

// ListByInterviewHandler is a probe read: anonymous callers get an empty
// list rather than 401.
func (h *QuestionHandler) ListByInterviewHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		utils.JSON(w, http.StatusOK, []models.CustomQuestion{})
		return
	}
	interviewID := chi.URLParam(r, "interviewId")
	questions, err := h.Questions.ListByInterview(r.Context(), interviewID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list questions")
		return
	}
	if questions == nil {
		questions = []models.CustomQuestion{}
	}
	utils.JSON(w, http.StatusOK, questions)
}

// DeleteHandler removes a question. Only the interviewer who authored it
// may delete it.
func (h *QuestionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	question, err := h.Questions.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Err(w, apperrors.NotFound("Question not found"))
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to load question")
		}
		return
	}
	if question.InterviewerID != identity.Subject {
		utils.Err(w, apperrors.Unauthorized("Unauthorized"))
		return
	}
	if err := h.Questions.Delete(r.Context(), id); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to delete question")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
