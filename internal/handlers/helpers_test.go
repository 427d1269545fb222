package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/rahul0401-coder/intraview-AI-career/internal/config"
	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories/memory"
	"github.com/rahul0401-coder/intraview-AI-career/internal/routers"
	"github.com/rahul0401-coder/intraview-AI-career/internal/session"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (http.Handler, *repositories.Stores) {
	h, stores, _ := newTestServerWithHub(t)
	return h, stores
}

func newTestServerWithHub(t *testing.T) (http.Handler, *repositories.Stores, *session.Hub) {
	t.Helper()
	stores := memory.NewStores()
	hub := session.NewHub()
	h := routers.New(routers.Deps{
		Cfg: &config.Config{
			Port:           "8080",
			JWTSecret:      testSecret,
			AllowedOrigins: []string{"*"},
			TokenTTLHours:  1,
		},
		Log:    zap.NewNop(),
		Stores: stores,
		Hub:    hub,
		Bus:    nil,
	})
	return h, stores, hub
}

type authResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// register creates a user through the public endpoint and returns the
// issued token and user record.
func register(t *testing.T, h http.Handler, name, email string) authResult {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: got status %d, body %s", email, rec.Code, rec.Body.String())
	}
	var out authResult
	decode(t, rec, &out)
	return out
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("got status %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	wantStatus(t, rec, status)
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != message {
		t.Fatalf("got error %q, want %q", body["error"], message)
	}
}
