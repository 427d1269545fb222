package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

// AuthHandler manages registration and login. The first user to ever
// register claims the admin bootstrap marker and becomes admin; everyone
// else starts as candidate.
type AuthHandler struct {
	Users     repositories.UserRepository
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(users repositories.UserRepository, secret string, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{Users: users, JWTSecret: secret, TokenTTL: ttl}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing fields")
		return
	}

	if existing, _ := h.Users.GetByEmail(r.Context(), req.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "email taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: uuid.New().String(),
		Image:      req.Image,
		Role:       models.RoleCandidate,
		Password:   string(hash),
	}
	if err := h.Users.Create(r.Context(), user); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	// The claim runs after the create so a failed create leaves the
	// one-time marker unclaimed for the next registrant.
	if first, err := h.Users.ClaimAdminBootstrap(r.Context()); err == nil && first {
		if promoted, err := h.Users.UpdateRole(r.Context(), user.ID, models.RoleAdmin); err == nil {
			user = promoted
		}
	}

	token, err := h.issueToken(user)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	utils.JSON(w, http.StatusCreated, authResponse{Token: token, User: *user})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: token, User: *user})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ExternalID,
		"email": user.Email,
		"exp":   time.Now().Add(h.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}
