package types

type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"` // overridden by the JWT sub when present
}

type ChatResponse struct {
	Success      bool   `json:"success"`
	UserMessage  string `json:"user_message"`
	AIResponse   string `json:"ai_response,omitempty"`
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type GetHistoryResponse struct {
	Success      bool               `json:"success"`
	History      []ConversationTurn `json:"history,omitempty"`
	ErrorMessage string             `json:"error,omitempty"`
}
