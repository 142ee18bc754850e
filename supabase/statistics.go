package supabase

import (
	"encoding/json"
	"fmt"

	"clementus360/task-coach/types"
)

// GetStatistics returns a zeroed record when the user has no statistics
// row; streaks and totals simply read as 0.
func (g *Gateway) GetStatistics(userID string) (types.UserStatistics, error) {
	resp, _, err := g.client.From("user_statistics").
		Select("*", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()

	if err != nil {
		return types.UserStatistics{}, fmt.Errorf("failed to fetch statistics: %w", err)
	}

	var stats []types.UserStatistics
	if err := json.Unmarshal(resp, &stats); err != nil {
		return types.UserStatistics{}, fmt.Errorf("failed to unmarshal statistics: %w", err)
	}

	if len(stats) == 0 {
		return types.UserStatistics{UserID: userID}, nil
	}

	return stats[0], nil
}
