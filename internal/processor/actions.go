package processor

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sant0-9/sift/internal/mail"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// ParseActionsResponse interprets an action-extraction response. It tries
// structured JSON first and silently falls through to line-pattern
// extraction on anything malformed; it never fails past this boundary.
func ParseActionsResponse(resp string) []mail.Task {
	if payload := jsonObjectRe.FindString(resp); payload != "" {
		if tasks := decodeTasks(payload); tasks != nil {
			return tasks
		}
	}
	return extractTasksFromText(resp)
}

// decodeTasks accepts {"tasks": [...]}, a bare array, or a single object
func decodeTasks(payload string) []mail.Task {
	var wrapped struct {
		Tasks []mail.Task `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && wrapped.Tasks != nil {
		return wrapped.Tasks
	}

	var list []mail.Task
	if err := json.Unmarshal([]byte(payload), &list); err == nil && list != nil {
		return list
	}

	var single mail.Task
	if err := json.Unmarshal([]byte(payload), &single); err == nil && single.Task != "" {
		return []mail.Task{single}
	}

	return nil
}

var taskLineWords = []string{"task", "action", "need to", "please", "review", "prepare"}

var lineDeadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`by\s+(\w+\s+\d{1,2})`),
	regexp.MustCompile(`due\s+(\w+\s+\d{1,2})`),
	regexp.MustCompile(`deadline\s+(\w+\s+\d{1,2})`),
	regexp.MustCompile(`(tomorrow)`),
	regexp.MustCompile(`(next\s+\w+)`),
}

// extractTasksFromText recovers tasks from a plain-text response,
// one task per line that looks actionable
func extractTasksFromText(text string) []mail.Task {
	var tasks []mail.Task

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 10 {
			continue
		}

		lower := strings.ToLower(line)
		if !containsAny(lower, taskLineWords) {
			continue
		}

		task := mail.Task{Task: line, Priority: mail.PriorityMedium}

		if containsAny(lower, []string{"urgent", "asap", "immediately"}) {
			task.Priority = mail.PriorityHigh
		} else if containsAny(lower, []string{"when possible", "at your convenience"}) {
			task.Priority = mail.PriorityLow
		}

		for _, p := range lineDeadlinePatterns {
			if m := p.FindStringSubmatch(lower); m != nil {
				task.Deadline = titleWords(m[1])
				break
			}
		}

		tasks = append(tasks, task)
	}

	if len(tasks) == 0 {
		tasks = append(tasks, mail.Task{Task: "Review this email", Priority: mail.PriorityMedium})
	}
	return tasks
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
