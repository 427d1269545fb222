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

type UserHandler struct {
	Users repositories.UserRepository
}

func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

// MeHandler is a probe read: an authenticated-but-unregistered caller
// gets null, not an error, so clients can branch to onboarding.
func (h *UserHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok || identity.User == nil {
		utils.JSON(w, http.StatusOK, nil)
		return
	}
	utils.JSON(w, http.StatusOK, identity.User)
}

// ListUsersHandler returns every user; any authenticated caller.
func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	users, err := h.Users.List(r.Context())
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	utils.JSON(w, http.StatusOK, users)
}

type updateRoleRequest struct {
	Role models.Role `json:"role"`
}

// UpdateRoleHandler changes a user's role. Admin only; demoting the sole
// remaining admin is rejected and nothing is written.
func (h *UserHandler) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := adminFrom(r, "Only admins can update user roles"); err != nil {
		utils.Err(w, err)
		return
	}

	userID := chi.URLParam(r, "id")
	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !req.Role.Valid() {
		utils.Err(w, apperrors.Invalid("invalid role"))
		return
	}

	target, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Err(w, apperrors.NotFound("User not found"))
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to load user")
		}
		return
	}

	if target.Role == models.RoleAdmin && req.Role != models.RoleAdmin {
		admins, err := h.Users.CountByRole(r.Context(), models.RoleAdmin)
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "failed to count admins")
			return
		}
		if admins == 1 {
			utils.Err(w, apperrors.PolicyViolation("Cannot remove the last admin"))
			return
		}
	}

	updated, err := h.Users.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to update role")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

// PromoteByEmailHandler is the admin recovery path: promote a user to
// admin by email.
func (h *UserHandler) PromoteByEmailHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := adminFrom(r, "Only admins can update user roles"); err != nil {
		utils.Err(w, err)
		return
	}

	email := chi.URLParam(r, "email")
	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil {
		utils.Err(w, apperrors.NotFound("User not found"))
		return
	}
	updated, err := h.Users.UpdateRole(r.Context(), user.ID, models.RoleAdmin)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to update role")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}
