package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/metrics"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/session"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origin checks are handled by the CORS layer; the socket
	// itself is open to any origin that got a token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveCodeHandler serves the append-only code log for an interview and
// its WebSocket feed. Every successful append is fanned out locally via
// the hub and cross-instance via the bus.
type LiveCodeHandler struct {
	LiveCode repositories.LiveCodeRepository
	Hub      *session.Hub
	Bus      *session.Bus
	Log      *zap.Logger
}

func NewLiveCodeHandler(liveCode repositories.LiveCodeRepository, hub *session.Hub, bus *session.Bus, log *zap.Logger) *LiveCodeHandler {
	return &LiveCodeHandler{LiveCode: liveCode, Hub: hub, Bus: bus, Log: log}
}

type appendCodeRequest struct {
	Code       string          `json:"code"`
	Language   models.Language `json:"language"`
	QuestionID string          `json:"questionId,omitempty"`
}

func (h *LiveCodeHandler) AppendHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	interviewID := chi.URLParam(r, "id")
	var req appendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !req.Language.Valid() {
		utils.Err(w, apperrors.Invalid("invalid language"))
		return
	}

	event := models.LiveCodeEvent{
		InterviewID: interviewID,
		Code:        req.Code,
		Language:    req.Language,
		QuestionID:  req.QuestionID,
		UpdatedBy:   identity.Subject,
		LastUpdated: time.Now().UTC(),
	}
	h.append(w, r, event)
}

type switchQuestionRequest struct {
	QuestionID string `json:"questionId"`
}

// SwitchQuestionHandler appends an event with the new question id while
// carrying the previous latest code and language forward. A fresh
// interview starts from empty javascript.
func (h *LiveCodeHandler) SwitchQuestionHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		utils.Err(w, err)
		return
	}
	interviewID := chi.URLParam(r, "id")
	var req switchQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.QuestionID == "" {
		utils.Err(w, apperrors.Invalid("questionId is required"))
		return
	}

	code := ""
	language := models.LangJavaScript
	latest, err := h.LiveCode.Latest(r.Context(), interviewID)
	if err == nil {
		code = latest.Code
		language = latest.Language
	} else if !errors.Is(err, repositories.ErrNotFound) {
		utils.JSONError(w, http.StatusInternalServerError, "failed to load latest code")
		return
	}

	event := models.LiveCodeEvent{
		InterviewID: interviewID,
		Code:        code,
		Language:    language,
		QuestionID:  req.QuestionID,
		UpdatedBy:   identity.Subject,
		LastUpdated: time.Now().UTC(),
	}
	h.append(w, r, event)
}

func (h *LiveCodeHandler) append(w http.ResponseWriter, r *http.Request, event models.LiveCodeEvent) {
	if err := h.LiveCode.Append(r.Context(), &event); err != nil {
		h.Log.Error("failed to append live-code event",
			zap.String("interviewId", event.InterviewID), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to save code update")
		return
	}
	metrics.CountLiveCodeEvent()
	h.Hub.Broadcast(event)
	h.Bus.Publish(r.Context(), event)
	utils.JSON(w, http.StatusCreated, event)
}

// LatestHandler returns the current editor state, or null when no code
// has been written yet.
func (h *LiveCodeHandler) LatestHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := identityFrom(r); err != nil {
		utils.Err(w, err)
		return
	}
	interviewID := chi.URLParam(r, "id")
	latest, err := h.LiveCode.Latest(r.Context(), interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(w, http.StatusOK, nil)
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "failed to load latest code")
		return
	}
	utils.JSON(w, http.StatusOK, latest)
}

// SubscribeHandler upgrades to a WebSocket, replays the latest event if
// one exists, then streams every subsequent append for the interview
// until the client disconnects.
func (h *LiveCodeHandler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := session.NewClient(conn)
	h.Hub.Join(interviewID, client)
	h.Log.Info("live-code subscriber joined",
		zap.String("interviewId", interviewID),
		zap.Int("subscribers", h.Hub.SubscriberCount(interviewID)))

	if latest, err := h.LiveCode.Latest(r.Context(), interviewID); err == nil {
		client.Send(*latest)
	}

	go func() {
		defer func() {
			remaining := h.Hub.Leave(interviewID, client)
			conn.Close()
			h.Log.Info("live-code subscriber left",
				zap.String("interviewId", interviewID),
				zap.Int("subscribers", remaining))
		}()
		for {
			// Subscribers only listen; reading drains control frames and
			// detects the disconnect.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
