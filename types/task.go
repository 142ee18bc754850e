package types

import "time"

// Task priorities, lowest to highest.
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

type Task struct {
	ID        string     `json:"id,omitempty"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"` // nullable
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type CreateTaskRequest struct {
	UserID   string     `json:"user_id"`
	Title    string     `json:"title"`
	Priority string     `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

type TaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`  // the created task
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type GetTasksResponse struct {
	Success      bool   `json:"success"`
	Tasks        []Task `json:"tasks,omitempty"`
	Total        int    `json:"total,omitempty"`
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type CompleteTaskResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"` // confirmation message
	ErrorMessage string `json:"error,omitempty"`   // only set on failure
}
