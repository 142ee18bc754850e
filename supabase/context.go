package supabase

import (
	"sync"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"
)

// RetrieveContext gathers everything one chat turn needs about a user.
//
// The five reads are independent, so they run concurrently and are
// joined before returning. A failed read degrades to its empty default
// rather than failing the turn: chat still works for a brand-new user or
// during a partial store outage, just with less personalization. This
// function never returns an error.
func RetrieveContext(store Store, userID string) types.RetrievedContext {
	var rc types.RetrievedContext
	var wg sync.WaitGroup

	// Each goroutine writes a distinct field, so no locking is needed.
	wg.Add(5)

	go func() {
		defer wg.Done()
		profile, err := store.GetProfile(userID)
		if err != nil {
			config.Logger.Warn("Could not fetch profile, continuing without it:", err)
			return
		}
		rc.Profile = profile
	}()

	go func() {
		defer wg.Done()
		tasks, err := store.GetTasks(userID)
		if err != nil {
			config.Logger.Warn("Could not fetch tasks, continuing without them:", err)
			return
		}
		rc.Tasks = tasks
	}()

	go func() {
		defer wg.Done()
		stats, err := store.GetStatistics(userID)
		if err != nil {
			config.Logger.Warn("Could not fetch statistics, continuing without them:", err)
			rc.Stats = types.UserStatistics{UserID: userID}
			return
		}
		rc.Stats = stats
	}()

	go func() {
		defer wg.Done()
		activity, err := store.GetRecentActivity(userID, config.ContextConfig.MaxRecentActivity)
		if err != nil {
			config.Logger.Warn("Could not fetch activity, continuing without it:", err)
			return
		}
		rc.Activity = activity
	}()

	go func() {
		defer wg.Done()
		history, err := store.GetConversationHistory(userID, config.ContextConfig.MaxHistoryTurns)
		if err != nil {
			config.Logger.Warn("Could not fetch conversation history, continuing without it:", err)
			return
		}
		rc.History = history
	}()

	wg.Wait()

	return rc
}
