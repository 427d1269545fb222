package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.JSON(rec, http.StatusCreated, map[string]int{"n": 1})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"n":1}` {
		t.Fatalf("body = %q", body)
	}
}

func TestJSONNilPayloadIsNull(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.JSON(rec, http.StatusOK, nil)
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Fatalf("body = %q, want null", body)
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.JSONError(rec, http.StatusConflict, "email taken")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"error":"email taken"}` {
		t.Fatalf("body = %q", body)
	}
}

func TestErrMapsKinds(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.Unauthorized("Unauthorized"), http.StatusUnauthorized},
		{apperrors.NotFound("User not found"), http.StatusNotFound},
		{apperrors.PolicyViolation("Cannot remove the last admin"), http.StatusConflict},
		{apperrors.OutOfRange("Invalid question index"), http.StatusBadRequest},
		{apperrors.Invalid("invalid role"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		utils.Err(rec, tc.err)
		if rec.Code != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.want)
		}
		if !strings.Contains(rec.Body.String(), tc.err.Error()) {
			t.Errorf("%v: body %q does not carry the message", tc.err, rec.Body.String())
		}
	}
}
