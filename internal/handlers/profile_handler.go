package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/middleware"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

type ProfileHandler struct {
	Profiles repositories.ProfileRepository
}

func NewProfileHandler(profiles repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

type upsertProfileRequest struct {
	Industry          string   `json:"industry"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Skills            []string `json:"skills"`
	Bio               string   `json:"bio"`
}

// UpsertHandler creates or replaces the caller's skills profile; each
// user has at most one.
func (h *ProfileHandler) UpsertHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	var req upsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Industry == "" {
		utils.Err(w, apperrors.Invalid("industry is required"))
		return
	}

	profile := &models.SkillsProfile{
		UserID:            identity.Subject,
		Industry:          req.Industry,
		YearsOfExperience: req.YearsOfExperience,
		Skills:            req.Skills,
		Bio:               req.Bio,
		UpdatedAt:         time.Now().UTC(),
	}
	saved, err := h.Profiles.Upsert(r.Context(), profile)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}

// GetHandler is a probe read: anonymous callers and users without a
// profile both get null.
func (h *ProfileHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusOK, nil)
		return
	}
	profile, err := h.Profiles.GetByUser(r.Context(), identity.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusOK, nil)
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) ListByIndustryHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	industry := chi.URLParam(r, "industry")
	profiles, err := h.Profiles.ListByIndustry(r.Context(), industry)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if profiles == nil {
		profiles = []models.SkillsProfile{}
	}
	utils.JSON(w, http.StatusOK, profiles)
}
