package engine

import (
	"fmt"
	"strings"
)

// Topic lexicons tested in fixed order; each contributes its phrase at
// most once, and more than one may fire for a single email.
var topicLexicons = []struct {
	words  []string
	phrase string
}{
	{[]string{"meeting", "call", "discuss", "schedule"}, "scheduling or discussion"},
	{[]string{"report", "document", "review", "submit"}, "document review or submission"},
	{[]string{"project", "task", "assignment", "work"}, "project work or tasks"},
	{[]string{"question", "query", "advice", "help"}, "questions or advice needed"},
}

// The summarizer's urgency check is narrower than the classifier's lexicon
var summaryUrgencyWords = []string{"urgent", "asap", "immediately"}

// Summarize composes a short two-sentence synopsis from the topic
// lexicons that match the body. Pure function of its inputs.
func Summarize(subject, body string) string {
	text := strings.ToLower(body)

	var topics []string
	for _, lex := range topicLexicons {
		if containsAny(text, lex.words) {
			topics = append(topics, lex.phrase)
		}
	}

	var summary string
	if len(topics) > 0 {
		summary = fmt.Sprintf("This email about '%s' involves %s. ", subject, strings.Join(topics, ", "))
	} else {
		summary = fmt.Sprintf("This email '%s' requires your attention. ", subject)
	}

	if containsAny(text, summaryUrgencyWords) {
		summary += "It appears to be time-sensitive and should be addressed promptly."
	} else {
		summary += "Please review it when you have time."
	}

	return summary
}
