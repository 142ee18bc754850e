package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/task-coach/types"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	resp := types.ChatResponse{
		Success:      false,
		ErrorMessage: message,
	}
	writeJSON(w, status, resp)
}
