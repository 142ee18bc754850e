package supabase

import (
	"encoding/json"
	"fmt"

	"clementus360/task-coach/types"

	"github.com/supabase-community/postgrest-go"
)

// GetConversationHistory returns the newest turns first. Callers that
// want reading order reverse it themselves.
func (g *Gateway) GetConversationHistory(userID string, limit int) ([]types.ConversationTurn, error) {
	resp, _, err := g.client.From("conversation_history").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation history: %w", err)
	}

	var turns []types.ConversationTurn
	if err := json.Unmarshal(resp, &turns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}

	return turns, nil
}

func (g *Gateway) SaveConversationTurn(turn types.ConversationTurn) error {
	_, _, err := g.client.From("conversation_history").Insert(turn, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to save conversation turn: %w", err)
	}

	return nil
}
