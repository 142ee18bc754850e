package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"clementus360/task-coach/config"
	"clementus360/task-coach/llm"
	"clementus360/task-coach/supabase"
	"clementus360/task-coach/types"

	"github.com/google/uuid"
)

// fallbackResponse is the only generation-failure text users ever see;
// raw backend errors stay in the logs.
const fallbackResponse = "I'm having trouble right now. Give me a moment and ask again — your tasks are safe."

// Generator is the slice of the generation client the handlers need.
type Generator interface {
	Generate(prompt string) (string, error)
}

type Handler struct {
	Store supabase.Store
	LLM   Generator
}

func New(store supabase.Store, generator Generator) *Handler {
	return &Handler{Store: store, LLM: generator}
}

// userIDFromRequest resolves the user id, preferring the bearer token's
// sub claim over the value supplied in the payload.
func userIDFromRequest(r *http.Request, fromBody string) string {
	if sub, err := supabase.UserIDFromRequest(r); err == nil {
		return sub
	}
	return fromBody
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, "Missing message", http.StatusBadRequest)
		return
	}

	userID := userIDFromRequest(r, req.UserID)
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	// Retrieval degrades to defaults on its own; it cannot fail the turn.
	retrieved := supabase.RetrieveContext(h.Store, userID)
	augmented := llm.Augment(retrieved, time.Now())
	prompt := llm.BuildChatPrompt(req.Message, augmented)

	response, err := h.LLM.Generate(prompt)
	if err != nil {
		config.Logger.Error("Failed to get AI response:", err)
		response = fallbackResponse
	}

	// Persist the exchange without holding up the response.
	go func() {
		turn := types.ConversationTurn{
			UserID:    userID,
			Message:   req.Message,
			Response:  response,
			CreatedAt: time.Now(),
		}
		if err := h.Store.SaveConversationTurn(turn); err != nil {
			config.Logger.Warn("Failed to save conversation turn:", err)
		}
	}()

	go func() {
		entry := types.ActivityEntry{
			UserID:      userID,
			Description: "Chatted with the assistant",
		}
		if err := h.Store.TrackActivity(entry); err != nil {
			config.Logger.Warn("Failed to track chat activity:", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.ChatResponse{
		Success:     true,
		UserMessage: req.Message,
		AIResponse:  response,
	})
}
