package handlers

import (
	"net/http"
	"slices"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"

	"github.com/google/uuid"
)

// GetHistory returns the most recent conversation turns in reading
// order, oldest first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	turns, err := h.Store.GetConversationHistory(userID, config.ContextConfig.MaxHistoryTurns)
	if err != nil {
		config.Logger.Error("Failed to fetch conversation history:", err)
		writeError(w, "Could not fetch history", http.StatusInternalServerError)
		return
	}

	slices.Reverse(turns)

	writeJSON(w, http.StatusOK, types.GetHistoryResponse{
		Success: true,
		History: turns,
	})
}
