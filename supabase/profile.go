package supabase

import (
	"encoding/json"
	"fmt"

	"clementus360/task-coach/types"
)

// GetProfile returns nil without an error when the user has no profile
// row yet; the pipeline falls back to a generic name.
func (g *Gateway) GetProfile(userID string) (*types.UserProfile, error) {
	resp, _, err := g.client.From("profiles").
		Select("*", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profiles []types.UserProfile
	if err := json.Unmarshal(resp, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return &profiles[0], nil
}
