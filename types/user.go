package types

import "time"

// UserProfile is read-only to the chat pipeline; it may be absent for
// freshly signed-up users.
type UserProfile struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type UserStatistics struct {
	UserID              string `json:"user_id"`
	CurrentStreakDays   int    `json:"current_streak_days"`
	TasksCompletedTotal int    `json:"tasks_completed_total"`
}

type ActivityEntry struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type ConversationTurn struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
