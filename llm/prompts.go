package llm

import (
	"fmt"
	"strings"

	"clementus360/task-coach/config"
	"clementus360/task-coach/types"
)

const dueDateFormat = "Mon, Jan 2 at 3:04 PM"

const promptFooter = `HOW TO RESPOND:
- Be concise and conversational, like a supportive coach who knows their stuff
- Ground everything you say in the data above; never invent tasks or numbers
- Keep them motivated: acknowledge progress before pointing at gaps
- If anything is overdue, gently flag it and suggest a realistic next step
- Plain text only, no markdown headers`

// BuildChatPrompt renders one deterministic prompt from the augmented
// context and the user's message. Sections are emitted in a fixed order
// and skipped entirely when their source list is empty. Today's tasks
// and upcoming tasks are mutually exclusive in the output: upcoming only
// shows when nothing is due today.
func BuildChatPrompt(userMessage string, context types.AugmentedContext) string {
	sections := []string{}

	header := fmt.Sprintf(`You are a supportive productivity coach chatting with %s.

THEIR NUMBERS:
- Current streak: %d days
- Tasks: %d total, %d completed, %d pending (%d%% completion)`,
		context.UserName,
		context.Streak,
		context.TaskStats.Total,
		context.TaskStats.Completed,
		context.TaskStats.Pending,
		context.TaskStats.CompletionRate,
	)
	sections = append(sections, header)

	if len(context.Overdue) > 0 {
		block := "OVERDUE TASKS:\n"
		for _, task := range context.Overdue {
			block += fmt.Sprintf("- %s (was due %s)\n", task.Title, task.DueDate.Format(dueDateFormat))
		}
		sections = append(sections, strings.TrimRight(block, "\n"))
	}

	if len(context.Today) > 0 {
		block := "TODAY'S TASKS:\n"
		for _, task := range context.Today {
			block += fmt.Sprintf("- %s [%s]\n", task.Title, task.Priority)
		}
		sections = append(sections, strings.TrimRight(block, "\n"))
	} else if len(context.Upcoming) > 0 {
		block := "UPCOMING TASKS:\n"
		for _, task := range context.Upcoming {
			block += fmt.Sprintf("- %s\n", task.Title)
		}
		sections = append(sections, strings.TrimRight(block, "\n"))
	}

	if len(context.HighPriority) > 0 {
		block := "HIGH PRIORITY:\n"
		shown := context.HighPriority
		if max := config.ContextConfig.MaxHighPriorityTasks; len(shown) > max {
			shown = shown[:max]
		}
		for _, task := range shown {
			block += fmt.Sprintf("- %s [%s]\n", task.Title, task.Priority)
		}
		sections = append(sections, strings.TrimRight(block, "\n"))
	}

	if len(context.History) > 0 {
		convo := "CONVERSATION HISTORY:\n"
		for _, turn := range context.History {
			convo += fmt.Sprintf("THEM: %s\n", turn.Message)
			convo += fmt.Sprintf("YOU: %s\n\n", turn.Response)
		}
		sections = append(sections, strings.TrimRight(convo, "\n"))
	}

	sections = append(sections, fmt.Sprintf("THEIR CURRENT MESSAGE:\n%s", userMessage))
	sections = append(sections, promptFooter)

	return strings.Join(sections, "\n\n")
}
