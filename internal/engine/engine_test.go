package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenerateCategorize(t *testing.T) {
	prompt := "Categorize this email into one of these categories.\n\n" +
		"FROM: boss@company.com\nSUBJECT: Budget\nBODY: This is urgent, numbers due today."

	got := New().Generate(prompt)
	if got != "Important" {
		t.Errorf("Generate() = %q, want Important", got)
	}
}

func TestGenerateExtractActions(t *testing.T) {
	prompt := "Extract actionable tasks from this email. Look for required actions.\n\n" +
		"Please send the slides by Friday."

	got := New().Generate(prompt)

	var payload struct {
		Tasks []struct {
			Task     string `json:"task"`
			Priority string `json:"priority"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("Generate() returned invalid JSON: %v\n%s", err, got)
	}
	if len(payload.Tasks) == 0 || len(payload.Tasks) > MaxTasks {
		t.Errorf("got %d tasks, want 1..%d", len(payload.Tasks), MaxTasks)
	}
	if !strings.Contains(payload.Tasks[0].Task, "Send the slides") {
		t.Errorf("task = %q", payload.Tasks[0].Task)
	}
}

func TestGenerateSummarize(t *testing.T) {
	prompt := "Summarize this email.\n\nFROM: a@b.c\nSUBJECT: Standup\nBODY: Quick call to discuss the sprint."

	got := New().Generate(prompt)
	if !strings.Contains(got, "This email about 'Standup'") {
		t.Errorf("Generate() = %q", got)
	}
}

// The noun form routes too: the stock summarization prompt says
// "summary", not "summarize"
func TestGenerateSummaryNoun(t *testing.T) {
	prompt := "Provide a concise summary of this email.\n\nFROM: a@b.c\nSUBJECT: Standup\nBODY: Quick call to discuss the sprint."

	got := New().Generate(prompt)
	if !strings.Contains(got, "This email about 'Standup'") {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateReply(t *testing.T) {
	prompt := "Draft a polite reply.\n\nFROM: a@b.c\nSUBJECT: Catch-up\nBODY: Can we schedule a call?"

	got := New().Generate(prompt)
	if got != replyScheduling {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateUnknownVerb(t *testing.T) {
	got := New().Generate("Translate this email into French please.")
	if got != GenericResponse {
		t.Errorf("Generate() = %q, want generic response", got)
	}
}

func TestParsePromptEmail(t *testing.T) {
	prompt := "Some instruction.\n\nFROM: alice@example.com\nSUBJECT: Hi there\nBODY: First line.\nSecond line."
	email := parsePromptEmail(prompt)

	if email.Sender != "alice@example.com" {
		t.Errorf("sender = %q", email.Sender)
	}
	if email.Subject != "Hi there" {
		t.Errorf("subject = %q", email.Subject)
	}
	if email.Body != "First line.\nSecond line." {
		t.Errorf("body = %q", email.Body)
	}
}

// Without structured markers the whole prompt becomes the body
func TestParsePromptEmailUnstructured(t *testing.T) {
	email := parsePromptEmail("just some text")
	if email.Body != "just some text" {
		t.Errorf("body = %q", email.Body)
	}
	if email.Sender != "" || email.Subject != "" {
		t.Error("sender/subject should be empty for unstructured prompts")
	}
}
