package handlers

import (
	"net/http"

	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
