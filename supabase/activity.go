package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/task-coach/types"

	"github.com/supabase-community/postgrest-go"
)

// GetRecentActivity returns the newest entries first.
func (g *Gateway) GetRecentActivity(userID string, limit int) ([]types.ActivityEntry, error) {
	resp, _, err := g.client.From("activity_log").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}

	var entries []types.ActivityEntry
	if err := json.Unmarshal(resp, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity: %w", err)
	}

	return entries, nil
}

func (g *Gateway) TrackActivity(entry types.ActivityEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, _, err := g.client.From("activity_log").Insert(entry, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to track activity: %w", err)
	}

	return nil
}
