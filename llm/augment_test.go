package llm

import (
	"testing"
	"time"

	"clementus360/task-coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duePtr(t time.Time) *time.Time { return &t }

func TestAugmentEmptyContext(t *testing.T) {
	aug := Augment(types.RetrievedContext{}, time.Now())

	assert.Equal(t, "User", aug.UserName)
	assert.Equal(t, 0, aug.Streak)
	assert.Equal(t, types.TaskStats{}, aug.TaskStats)
	assert.Empty(t, aug.Overdue)
	assert.Empty(t, aug.Today)
	assert.Empty(t, aug.Upcoming)
	assert.Empty(t, aug.HighPriority)
	assert.Empty(t, aug.History)
}

func TestAugmentUsesProfileNameAndStreak(t *testing.T) {
	rc := types.RetrievedContext{
		Profile: &types.UserProfile{UserID: "u1", FullName: "Ada Lovelace"},
		Stats:   types.UserStatistics{CurrentStreakDays: 7},
	}

	aug := Augment(rc, time.Now())

	assert.Equal(t, "Ada Lovelace", aug.UserName)
	assert.Equal(t, 7, aug.Streak)
}

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		want      int
	}{
		{"no tasks", 0, 0, 0},
		{"three of four", 4, 3, 75},
		{"one of three rounds", 3, 1, 33},
		{"two of three rounds up", 3, 2, 67},
		{"all done", 5, 5, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tasks []types.Task
			for i := 0; i < tc.total; i++ {
				tasks = append(tasks, types.Task{Title: "t", Completed: i < tc.completed})
			}

			stats := computeTaskStats(tasks)

			assert.Equal(t, tc.want, stats.CompletionRate)
			assert.GreaterOrEqual(t, stats.CompletionRate, 0)
			assert.LessOrEqual(t, stats.CompletionRate, 100)
			assert.Equal(t, tc.total-tc.completed, stats.Pending)
		})
	}
}

func TestUpcomingCappedAndSorted(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Insert out of order to prove the augmenter sorts.
	offsets := []int{72, 24, 120, 48, 96, 144, 168}
	rc := types.RetrievedContext{}
	for _, hrs := range offsets {
		rc.Tasks = append(rc.Tasks, types.Task{
			Title:    "future",
			Priority: types.PriorityNormal,
			DueDate:  duePtr(now.Add(time.Duration(hrs) * time.Hour)),
		})
	}

	aug := Augment(rc, now)

	require.Len(t, aug.Upcoming, 5)
	for i := 1; i < len(aug.Upcoming); i++ {
		assert.True(t, aug.Upcoming[i-1].DueDate.Before(*aug.Upcoming[i].DueDate),
			"upcoming tasks must be ascending by due date")
	}
	assert.Equal(t, now.Add(24*time.Hour), *aug.Upcoming[0].DueDate)
}

func TestTaskDueEarlierTodayIsBothOverdueAndToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	rc := types.RetrievedContext{
		Tasks: []types.Task{
			{Title: "morning standup", Priority: types.PriorityNormal, DueDate: duePtr(now.Add(-5 * time.Hour))},
		},
	}

	aug := Augment(rc, now)

	require.Len(t, aug.Overdue, 1)
	require.Len(t, aug.Today, 1)
	assert.Equal(t, "morning standup", aug.Overdue[0].Title)
	assert.Equal(t, "morning standup", aug.Today[0].Title)
	assert.Empty(t, aug.Upcoming)
}

func TestBucketsIgnoreCompletedTasks(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	rc := types.RetrievedContext{
		Tasks: []types.Task{
			{Title: "done already", Priority: types.PriorityUrgent, Completed: true, DueDate: duePtr(now.Add(-time.Hour))},
			{Title: "still open", Priority: types.PriorityHigh, DueDate: duePtr(now.Add(-time.Hour))},
		},
	}

	aug := Augment(rc, now)

	require.Len(t, aug.Overdue, 1)
	assert.Equal(t, "still open", aug.Overdue[0].Title)
	require.Len(t, aug.HighPriority, 1)
	assert.Equal(t, "still open", aug.HighPriority[0].Title)

	// Completed tasks still count toward the stats.
	assert.Equal(t, 2, aug.TaskStats.Total)
	assert.Equal(t, 1, aug.TaskStats.Completed)
}

func TestHighPriorityFiltersByPriorityOnly(t *testing.T) {
	now := time.Now()
	rc := types.RetrievedContext{
		Tasks: []types.Task{
			{Title: "low", Priority: types.PriorityLow},
			{Title: "normal", Priority: types.PriorityNormal},
			{Title: "high undated", Priority: types.PriorityHigh},
			{Title: "urgent future", Priority: types.PriorityUrgent, DueDate: duePtr(now.Add(48 * time.Hour))},
		},
	}

	aug := Augment(rc, now)

	require.Len(t, aug.HighPriority, 2)
	assert.Equal(t, "high undated", aug.HighPriority[0].Title)
	assert.Equal(t, "urgent future", aug.HighPriority[1].Title)
}

func TestHistoryReversedToChronological(t *testing.T) {
	base := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	rc := types.RetrievedContext{
		History: []types.ConversationTurn{
			{Message: "newest", CreatedAt: base.Add(2 * time.Hour)},
			{Message: "middle", CreatedAt: base.Add(time.Hour)},
			{Message: "oldest", CreatedAt: base},
		},
	}

	aug := Augment(rc, time.Now())

	require.Len(t, aug.History, 3)
	assert.Equal(t, "oldest", aug.History[0].Message)
	assert.Equal(t, "newest", aug.History[2].Message)
	// Retrieved slice stays untouched.
	assert.Equal(t, "newest", rc.History[0].Message)
}
