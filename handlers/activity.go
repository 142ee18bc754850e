package handlers

import (
	"net/http"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"

	"github.com/google/uuid"
)

type getActivityResponse struct {
	Success      bool                  `json:"success"`
	Activity     []types.ActivityEntry `json:"activity,omitempty"`
	ErrorMessage string                `json:"error,omitempty"`
}

// GetActivity returns the user's recent activity log, newest first.
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	entries, err := h.Store.GetRecentActivity(userID, config.ContextConfig.MaxRecentActivity)
	if err != nil {
		config.Logger.Error("Failed to fetch activity:", err)
		writeError(w, "Could not fetch activity", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, getActivityResponse{
		Success:  true,
		Activity: entries,
	})
}
