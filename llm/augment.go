package llm

import (
	"math"
	"slices"
	"sort"
	"time"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"
)

// Augment turns raw retrieved records into the prompt-ready view. It is
// a pure function of its inputs; the caller supplies the clock once so
// every bucket test sees the same "now".
//
// Overdue and today's buckets are computed independently and never
// deduplicated against each other: a task due earlier today is both
// overdue and today's. Downstream rendering relies on that.
func Augment(rc types.RetrievedContext, now time.Time) types.AugmentedContext {
	aug := types.AugmentedContext{
		UserName: "User",
		Streak:   rc.Stats.CurrentStreakDays,
	}

	if rc.Profile != nil && rc.Profile.FullName != "" {
		aug.UserName = rc.Profile.FullName
	}

	aug.TaskStats = computeTaskStats(rc.Tasks)

	year, month, day := now.Date()
	for _, task := range rc.Tasks {
		if task.Completed {
			continue
		}

		if task.DueDate != nil {
			due := *task.DueDate
			if due.Before(now) {
				aug.Overdue = append(aug.Overdue, task)
			}
			y, m, d := due.Date()
			if y == year && m == month && d == day {
				aug.Today = append(aug.Today, task)
			}
			if due.After(now) {
				aug.Upcoming = append(aug.Upcoming, task)
			}
		}

		if task.Priority == types.PriorityHigh || task.Priority == types.PriorityUrgent {
			aug.HighPriority = append(aug.HighPriority, task)
		}
	}

	sort.Slice(aug.Upcoming, func(i, j int) bool {
		return aug.Upcoming[i].DueDate.Before(*aug.Upcoming[j].DueDate)
	})
	if max := config.ContextConfig.MaxUpcomingTasks; len(aug.Upcoming) > max {
		aug.Upcoming = aug.Upcoming[:max]
	}

	// History is retrieved newest-first; prompts want reading order.
	aug.History = slices.Clone(rc.History)
	slices.Reverse(aug.History)

	return aug
}

func computeTaskStats(tasks []types.Task) types.TaskStats {
	stats := types.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(100 * float64(stats.Completed) / float64(stats.Total)))
	}

	return stats
}
