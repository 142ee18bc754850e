package types

// ContextConfig tunes how much stored data one chat turn pulls in.
type ContextConfig struct {
	MaxRecentActivity    int
	MaxHistoryTurns      int
	MaxUpcomingTasks     int
	MaxHighPriorityTasks int
}

// RetrievedContext holds everything fetched for one chat turn. It lives
// for a single request and is discarded with the response.
type RetrievedContext struct {
	Profile  *UserProfile       `json:"profile,omitempty"`
	Tasks    []Task             `json:"tasks"`
	Stats    UserStatistics     `json:"stats"`
	Activity []ActivityEntry    `json:"activity"`
	History  []ConversationTurn `json:"history"` // newest first, as retrieved
}

type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completion_rate"` // integer percent, 0-100
}

// AugmentedContext is the prompt-ready view of a RetrievedContext.
//
// Overdue and Today are computed independently over the same incomplete
// tasks: a task due earlier today shows up in both. Known quirk, kept on
// purpose so prompts keep nagging about it.
type AugmentedContext struct {
	UserName     string             `json:"user_name"`
	Streak       int                `json:"streak"`
	TaskStats    TaskStats          `json:"task_stats"`
	Overdue      []Task             `json:"overdue"`
	Today        []Task             `json:"today"`
	Upcoming     []Task             `json:"upcoming"` // ascending by due date, capped
	HighPriority []Task             `json:"high_priority"`
	History      []ConversationTurn `json:"history"` // chronological, oldest first
}
