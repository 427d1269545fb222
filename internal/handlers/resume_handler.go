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

type ResumeHandler struct {
	Resumes repositories.ResumeRepository
}

func NewResumeHandler(resumes repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

func (h *ResumeHandler) ownedResume(r *http.Request, subject, id string) (*models.Resume, error) {
	resume, err := h.Resumes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Resume not found")
		}
		return nil, err
	}
	if resume.UserID != subject {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	return resume, nil
}

type createResumeRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	JobDescription string `json:"jobDescription,omitempty"`
	Template       string `json:"template,omitempty"`
}

func (h *ResumeHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req createResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" {
		utils.Err(w, apperrors.Invalid("title is required"))
		return
	}

	now := time.Now().UTC()
	resume := &models.Resume{
		UserID:         identity.Subject,
		Title:          req.Title,
		Content:        req.Content,
		JobDescription: req.JobDescription,
		Template:       req.Template,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := h.Resumes.Create(r.Context(), resume); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create resume")
		return
	}
	utils.JSON(w, http.StatusCreated, resume)
}

func (h *ResumeHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	resumes, err := h.Resumes.ListByUser(r.Context(), identity.Subject)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	utils.JSON(w, http.StatusOK, resumes)
}

func (h *ResumeHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	resume, err := h.ownedResume(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resume)
}

type updateResumeRequest struct {
	Title          string `json:"title,omitempty"`
	Content        string `json:"content,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
	Template       string `json:"template,omitempty"`
}

func (h *ResumeHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req updateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	resume, err := h.ownedResume(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}

	if req.Title != "" {
		resume.Title = req.Title
	}
	if req.Content != "" {
		resume.Content = req.Content
	}
	if req.JobDescription != "" {
		resume.JobDescription = req.JobDescription
	}
	if req.Template != "" {
		resume.Template = req.Template
	}
	resume.UpdatedAt = time.Now().UTC()
	if err := h.Resumes.Update(r.Context(), resume); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to update resume")
		return
	}
	utils.JSON(w, http.StatusOK, resume)
}

func (h *ResumeHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	resume, err := h.ownedResume(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}
	if err := h.Resumes.Delete(r.Context(), resume.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type generateResumeRequest struct {
	JobDescription string `json:"jobDescription"`
	Template       string `json:"template,omitempty"`
}

// GenerateHandler rewrites the resume from the job description using the
// built-in transform and stores the result as a new version of the
// document.
func (h *ResumeHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req generateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.JobDescription == "" {
		utils.Err(w, apperrors.Invalid("jobDescription is required"))
		return
	}
	resume, err := h.ownedResume(r, identity.Subject, chi.URLParam(r, "id"))
	if err != nil {
		utils.Err(w, err)
		return
	}

	generated := career.BuildResume(req.JobDescription, req.Template)
	resume.Title = generated.Title
	resume.Content = generated.Content
	resume.Skills = generated.Skills
	resume.Template = generated.Template
	resume.Feedback = generated.Feedback
	resume.JobDescription = req.JobDescription
	resume.UpdatedAt = time.Now().UTC()
	if err := h.Resumes.Update(r.Context(), resume); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to update resume")
		return
	}
	utils.JSON(w, http.StatusOK, resume)
}
