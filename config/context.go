package config

import "clementus360/task-coach/types"

// Context configuration
var ContextConfig = types.ContextConfig{
	MaxRecentActivity:    10,
	MaxHistoryTurns:      5,
	MaxUpcomingTasks:     5,
	MaxHighPriorityTasks: 3,
}
