package engine

import (
	"regexp"
	"strings"

	"github.com/sant0-9/sift/internal/mail"
)

// MaxTasks caps an extraction pass; sweep order is preserved on truncation
const MaxTasks = 3

// FallbackTask is emitted when no sweep finds anything
const FallbackTask = "Review this email for important information"

// The three sweeps, run in this order over the whole body
var (
	pleaseRe     = regexp.MustCompile(`(?i)please\s+([^.!?]+[.!?])`)
	obligationRe = regexp.MustCompile(`(?i)(?:need to|should|must)\s+([^.!?]+[.!?])`)
	bulletRe     = regexp.MustCompile(`[-*•]\s*([^\n.!?]+[.!?])`)
)

// Priority words are looked for anywhere in the body, not per clause
var (
	highPriorityWords = []string{"urgent", "asap", "immediately", "critical"}
	lowPriorityWords  = []string{"when possible", "at your convenience", "no rush"}
)

// Deadline patterns, tried in order; the first hit wins
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)by\s+(\w+day|\w+\s+\d{1,2})`),
	regexp.MustCompile(`(?i)due\s+(\w+day|\w+\s+\d{1,2})`),
	regexp.MustCompile(`(?i)deadline\s+(\w+day|\w+\s+\d{1,2})`),
	regexp.MustCompile(`(?i)tomorrow`),
	regexp.MustCompile(`(?i)next\s+\w+`),
	regexp.MustCompile(`(?i)this\s+\w+`),
	regexp.MustCompile(`(?i)by\s+EOD`),
	regexp.MustCompile(`(?i)by\s+end\s+of\s+day`),
}

// ExtractActions scans an email body and returns 1..MaxTasks tasks.
// Sweeps run independently and their results are concatenated before the
// cap is applied. Never returns an empty list.
func ExtractActions(body string) []mail.Task {
	priority := determinePriority(body)
	deadline := extractDeadline(body)

	var tasks []mail.Task

	for _, m := range pleaseRe.FindAllStringSubmatch(body, -1) {
		tasks = append(tasks, mail.Task{
			Task:     cleanTaskText(m[1]),
			Priority: priority,
			Deadline: deadline,
		})
	}

	for _, m := range obligationRe.FindAllStringSubmatch(body, -1) {
		tasks = append(tasks, mail.Task{
			Task:     cleanTaskText(m[1]),
			Priority: priority,
			Deadline: deadline,
		})
	}

	// Bulleted lines carry no per-item context: always medium, no deadline
	for _, m := range bulletRe.FindAllStringSubmatch(body, -1) {
		tasks = append(tasks, mail.Task{
			Task:     cleanTaskText(m[1]),
			Priority: mail.PriorityMedium,
		})
	}

	if len(tasks) == 0 {
		tasks = append(tasks, mail.Task{
			Task:     FallbackTask,
			Priority: mail.PriorityMedium,
		})
	}

	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}
	return tasks
}

func determinePriority(body string) mail.Priority {
	text := strings.ToLower(body)
	switch {
	case containsAny(text, highPriorityWords):
		return mail.PriorityHigh
	case containsAny(text, lowPriorityWords):
		return mail.PriorityLow
	default:
		return mail.PriorityMedium
	}
}

func extractDeadline(body string) string {
	for _, p := range deadlinePatterns {
		m := p.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		deadline := m[0]
		if len(m) > 1 {
			deadline = m[1]
		}
		return titleCase(deadline)
	}
	return ""
}

// cleanTaskText trims the clause and capitalizes its first letter
func cleanTaskText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	r := []rune(text)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
