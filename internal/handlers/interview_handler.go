package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/middleware"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

type InterviewHandler struct {
	Interviews repositories.InterviewRepository
}

func NewInterviewHandler(interviews repositories.InterviewRepository) *InterviewHandler {
	return &InterviewHandler{Interviews: interviews}
}

type createInterviewRequest struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description,omitempty"`
	StartTime      time.Time              `json:"startTime"`
	Status         models.InterviewStatus `json:"status"`
	StreamCallID   string                 `json:"streamCallId"`
	CandidateID    string                 `json:"candidateId"`
	InterviewerIDs []string               `json:"interviewerIds"`
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	var req createInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || req.CandidateID == "" {
		utils.Err(w, apperrors.Invalid("title and candidateId are required"))
		return
	}
	if !req.Status.Valid() {
		utils.Err(w, apperrors.Invalid("invalid interview status"))
		return
	}

	interview := &models.Interview{
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		Status:         req.Status,
		StreamCallID:   req.StreamCallID,
		CandidateID:    req.CandidateID,
		InterviewerIDs: req.InterviewerIDs,
	}
	if err := h.Interviews.Create(r.Context(), interview); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create interview")
		return
	}
	utils.JSON(w, http.StatusCreated, interview)
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	interviews, err := h.Interviews.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

// ListMineHandler is a probe read: anonymous callers get an empty list.
func (h *InterviewHandler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []models.Interview{})
		return
	}
	interviews, err := h.Interviews.ListByCandidate(r.Context(), identity.Subject)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	utils.JSON(w, http.StatusOK, interviews)
}

// ListScheduledHandler returns the caller's scheduled and upcoming
// interviews, most recent start first. Anonymous callers get an empty
// list.
func (h *InterviewHandler) ListScheduledHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, []models.Interview{})
		return
	}
	interviews, err := h.Interviews.ListByCandidate(r.Context(), identity.Subject)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	scheduled := make([]models.Interview, 0, len(interviews))
	for _, iv := range interviews {
		if iv.Status == models.StatusScheduled || iv.Status == models.StatusUpcoming {
			scheduled = append(scheduled, iv)
		}
	}
	sort.Slice(scheduled, func(i, j int) bool { return scheduled[i].StartTime.After(scheduled[j].StartTime) })
	utils.JSON(w, http.StatusOK, scheduled)
}

func (h *InterviewHandler) ListByCandidateHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	candidateID := chi.URLParam(r, "candidateId")
	interviews, err := h.Interviews.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

// GetByStreamCallIDHandler is open for probing by the call UI; it
// returns null when no interview matches.
func (h *InterviewHandler) GetByStreamCallIDHandler(w http.ResponseWriter, r *http.Request) {
	streamCallID := chi.URLParam(r, "streamCallId")
	interview, err := h.Interviews.GetByStreamCallID(r.Context(), streamCallID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusOK, nil)
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	utils.JSON(w, http.StatusOK, interview)
}

type updateStatusRequest struct {
	Status models.InterviewStatus `json:"status"`
}

// UpdateStatusHandler moves an interview through its lifecycle. EndTime
// is written only on the transition to completed.
func (h *InterviewHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !req.Status.Valid() {
		utils.Err(w, apperrors.Invalid("invalid interview status"))
		return
	}
	updated, err := h.Interviews.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Err(w, apperrors.NotFound("Interview not found"))
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to update interview")
		}
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}
