package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rahul0401-coder/intraview-AI-career/internal/apperrors"
)

// JSON writes a JSON response with status code. A nil payload is
// written as a JSON null; probe reads depend on that.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// JSONError writes an error message in JSON
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Err writes an application error with the status its kind maps to.
func Err(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	JSONError(w, status, msg)
}
