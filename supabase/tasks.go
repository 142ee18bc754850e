package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/task-coach/types"

	"github.com/supabase-community/postgrest-go"
)

// GetTasks returns the user's tasks ordered by due date ascending, with
// undated tasks last.
func (g *Gateway) GetTasks(userID string) ([]types.Task, error) {
	resp, _, err := g.client.From("tasks").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("due_date", &postgrest.OrderOpts{Ascending: true, NullsFirst: false}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	return tasks, nil
}

func (g *Gateway) CreateTask(task types.Task) (types.Task, error) {
	if task.Priority == "" {
		task.Priority = types.PriorityNormal
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	created := []types.Task{task}
	resp, _, err := g.client.From("tasks").Insert(created, false, "", "", "").Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Task{}, fmt.Errorf("failed to unmarshal created task: %w", err)
	}
	if len(created) == 0 {
		return types.Task{}, fmt.Errorf("insert returned no task")
	}

	return created[0], nil
}

func (g *Gateway) CompleteTask(taskID, userID string) error {
	_, _, err := g.client.From("tasks").
		Update(map[string]interface{}{"completed": true}, "", "").
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	return nil
}
