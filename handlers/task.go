package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"

	"github.com/google/uuid"
)

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	tasks, err := h.Store.GetTasks(userID)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks:", err)
		writeError(w, "Could not fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetTasksResponse{
		Success: true,
		Tasks:   tasks,
		Total:   len(tasks),
	})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}
	if req.Priority != "" && !types.ValidPriority(req.Priority) {
		writeError(w, "Invalid priority", http.StatusBadRequest)
		return
	}

	userID := userIDFromRequest(r, req.UserID)
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	task := types.Task{
		UserID:   userID,
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}

	created, err := h.Store.CreateTask(task)
	if err != nil {
		config.Logger.Error("Failed to create task:", err)
		writeError(w, "Could not create task", http.StatusInternalServerError)
		return
	}

	go func() {
		entry := types.ActivityEntry{
			UserID:      userID,
			Description: fmt.Sprintf("Created task %q", created.Title),
		}
		if err := h.Store.TrackActivity(entry); err != nil {
			config.Logger.Warn("Failed to track task creation:", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    created,
	})
}

func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task id", http.StatusBadRequest)
		return
	}

	userID := userIDFromRequest(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	if err := h.Store.CompleteTask(taskID, userID); err != nil {
		config.Logger.Error("Failed to complete task:", err)
		writeError(w, "Could not complete task", http.StatusInternalServerError)
		return
	}

	go func() {
		entry := types.ActivityEntry{
			UserID:      userID,
			Description: "Completed a task",
		}
		if err := h.Store.TrackActivity(entry); err != nil {
			config.Logger.Warn("Failed to track task completion:", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.CompleteTaskResponse{
		Success: true,
		Message: "Task marked as completed",
	})
}
