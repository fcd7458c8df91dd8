package engine

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    string
	}{
		{
			name:    "single topic",
			subject: "Sync",
			body:    "Can we schedule a call?",
			want:    "This email about 'Sync' involves scheduling or discussion. Please review it when you have time.",
		},
		{
			name:    "multiple topics in lexicon order",
			subject: "Q4 planning",
			body:    "Let's discuss the report for the project.",
			want:    "This email about 'Q4 planning' involves scheduling or discussion, document review or submission, project work or tasks. Please review it when you have time.",
		},
		{
			name:    "no topics",
			subject: "Hello",
			body:    "Long time no see.",
			want:    "This email 'Hello' requires your attention. Please review it when you have time.",
		},
		{
			name:    "urgent second sentence",
			subject: "Outage",
			body:    "We need help immediately, the service is down.",
			want:    "This email about 'Outage' involves questions or advice needed. It appears to be time-sensitive and should be addressed promptly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.subject, tt.body)
			if got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Pure function of its inputs: same email, same summary
func TestSummarizeIdempotent(t *testing.T) {
	subject := "Weekly Project Update - Urgent Review Needed"
	body := "Hi team, we need to review the Q4 deliverables by tomorrow."

	first := Summarize(subject, body)
	second := Summarize(subject, body)
	if first != second {
		t.Errorf("Summarize() not idempotent:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, subject) {
		t.Errorf("summary %q does not mention the subject", first)
	}
}
