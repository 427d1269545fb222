package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

// CommentHandler serves post-interview feedback. Participant names are
// resolved and denormalized when a comment is written, so reads need no
// joins against the user store.
type CommentHandler struct {
	Comments   repositories.CommentRepository
	Interviews repositories.InterviewRepository
	Users      repositories.UserRepository
}

func NewCommentHandler(comments repositories.CommentRepository, interviews repositories.InterviewRepository, users repositories.UserRepository) *CommentHandler {
	return &CommentHandler{Comments: comments, Interviews: interviews, Users: users}
}

type addCommentRequest struct {
	InterviewID string `json:"interviewId"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
}

func (h *CommentHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := userFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.InterviewID == "" || req.Content == "" {
		utils.Err(w, apperrors.Invalid("interviewId and content are required"))
		return
	}

	interview, err := h.Interviews.GetByID(r.Context(), req.InterviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Err(w, apperrors.NotFound("Interview not found"))
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to load interview")
		}
		return
	}
	candidate, err := h.Users.GetByExternalID(r.Context(), interview.CandidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Err(w, apperrors.NotFound("User not found"))
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to load candidate")
		}
		return
	}

	comment := &models.Comment{
		InterviewID:     req.InterviewID,
		Content:         req.Content,
		Rating:          req.Rating,
		InterviewerID:   caller.ExternalID,
		InterviewerName: caller.Name,
		CandidateName:   candidate.Name,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Comments.Create(r.Context(), comment); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to add comment")
		return
	}
	utils.JSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) ListByInterviewHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	interviewID := chi.URLParam(r, "interviewId")
	comments, err := h.Comments.ListByInterview(r.Context(), interviewID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	utils.JSON(w, http.StatusOK, comments)
}

// MyFeedbackHandler gathers every comment left on the caller's own
// interviews, stamped with the interview title and date, newest first.
func (h *CommentHandler) MyFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	interviews, err := h.Interviews.ListByCandidate(r.Context(), identity.Subject)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}

	feedback := []models.CandidateFeedback{}
	for _, iv := range interviews {
		comments, err := h.Comments.ListByInterview(r.Context(), iv.ID)
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "failed to list comments")
			return
		}
		for _, c := range comments {
			feedback = append(feedback, models.CandidateFeedback{
				Comment:        c,
				InterviewTitle: iv.Title,
				InterviewDate:  iv.StartTime,
			})
		}
	}
	sort.Slice(feedback, func(i, j int) bool { return feedback[i].CreatedAt.After(feedback[j].CreatedAt) })
	utils.JSON(w, http.StatusOK, feedback)
}
