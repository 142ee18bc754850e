package supabase

import (
	"fmt"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"

	"github.com/supabase-community/supabase-go"
)

// Store is what the chat pipeline needs from the record store. The
// Gateway implements it against Supabase; tests swap in fakes.
type Store interface {
	GetProfile(userID string) (*types.UserProfile, error)
	GetTasks(userID string) ([]types.Task, error)
	GetStatistics(userID string) (types.UserStatistics, error)
	GetRecentActivity(userID string, limit int) ([]types.ActivityEntry, error)
	GetConversationHistory(userID string, limit int) ([]types.ConversationTurn, error)
	SaveConversationTurn(turn types.ConversationTurn) error
	TrackActivity(entry types.ActivityEntry) error
	CreateTask(task types.Task) (types.Task, error)
	CompleteTask(taskID, userID string) error
}

type Gateway struct {
	client *supabase.Client
}

func New(cfg config.Config) (*Gateway, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &Gateway{client: client}, nil
}
