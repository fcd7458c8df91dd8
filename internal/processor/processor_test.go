package processor

import (
	"path/filepath"
	"testing"

	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T) (*Processor, *prompts.Store) {
	t.Helper()
	store, err := prompts.New(filepath.Join(t.TempDir(), "prompts.json"))
	require.NoError(t, err)
	return New(engine.New(), store), store
}

func urgentEmail() *mail.Email {
	return &mail.Email{
		ID:      1,
		Sender:  "project.manager@company.com",
		Subject: "Weekly Project Update - Urgent Review Needed",
		Body:    "Hi team, we need to review the Q4 deliverables by tomorrow. Please prepare your status reports and be ready to discuss blockers. The meeting is scheduled for 10 AM tomorrow.",
	}
}

func requestEmail() *mail.Email {
	return &mail.Email{
		ID:      4,
		Sender:  "meeting.request@partner.com",
		Subject: "Meeting Request: Project Collaboration",
		Body:    "Would you be available for a 30-minute call next Tuesday to discuss potential collaboration? Please let me know what time works best for you.",
	}
}

func TestProcessEmailImportant(t *testing.T) {
	proc, _ := newTestProcessor(t)
	e := urgentEmail()

	proc.ProcessEmail(e)

	assert.Equal(t, mail.CategoryImportant, e.Category)
	// Actions are extracted for To-Do emails only
	assert.Empty(t, e.Actions)
	assert.NotNil(t, e.Actions)
	assert.Equal(t,
		"This email about 'Weekly Project Update - Urgent Review Needed' involves scheduling or discussion, document review or submission. Please review it when you have time.",
		e.Summary)
	assert.True(t, e.Processed())
}

func TestProcessEmailToDo(t *testing.T) {
	proc, _ := newTestProcessor(t)
	e := requestEmail()

	proc.ProcessEmail(e)

	assert.Equal(t, mail.CategoryToDo, e.Category)
	require.NotEmpty(t, e.Actions)
	assert.LessOrEqual(t, len(e.Actions), engine.MaxTasks)
	assert.Equal(t, "Let me know what time works best for you.", e.Actions[0].Task)
	assert.Equal(t, mail.PriorityMedium, e.Actions[0].Priority)
	assert.Equal(t, "Next Tuesday", e.Actions[0].Deadline)
}

func TestProcessBatch(t *testing.T) {
	proc, _ := newTestProcessor(t)
	emails := mail.NewInbox().All()

	proc.ProcessBatch(emails)

	for _, e := range emails {
		assert.True(t, e.Processed(), "email %d left unprocessed", e.ID)
		assert.NotEmpty(t, e.Summary, "email %d has no summary", e.ID)
	}
}

func TestDraftReply(t *testing.T) {
	proc, _ := newTestProcessor(t)

	draft := proc.DraftReply(requestEmail())
	assert.Contains(t, draft, "Thank you for reaching out about scheduling.")
}

// Editing a prompt changes the text sent to the engine, not the lexicons.
// The engine routes on the verbs in the request, so a rewritten prompt
// that keeps its verb behaves identically.
func TestPromptEditKeepsVerbBehavior(t *testing.T) {
	proc, store := newTestProcessor(t)
	newsletter := &mail.Email{
		Sender:  "newsletter@technews.com",
		Subject: "Weekly Tech Digest: AI Innovations",
		Body:    "This week in AI: new breakthroughs in language models.",
	}

	assert.Equal(t, mail.CategoryNewsletter, proc.Categorize(newsletter))

	require.NoError(t, store.Update(prompts.KeyCategorization, "You are a strict mail sorter. Categorize with care."))
	assert.Equal(t, mail.CategoryNewsletter, proc.Categorize(newsletter))
}

// Removing the verb from a prompt drops the request into the generic
// response, which cleans up to the default Important category
func TestPromptEditWithoutVerb(t *testing.T) {
	proc, store := newTestProcessor(t)
	newsletter := &mail.Email{
		Sender:  "newsletter@technews.com",
		Subject: "Weekly Tech Digest: AI Innovations",
		Body:    "This week in AI: new breakthroughs in language models.",
	}

	require.NoError(t, store.Update(prompts.KeyCategorization, "Decide which bucket fits best."))
	assert.Equal(t, mail.CategoryImportant, proc.Categorize(newsletter))
}

func TestStats(t *testing.T) {
	proc, _ := newTestProcessor(t)
	emails := []*mail.Email{
		{Category: mail.CategoryImportant},
		{Category: mail.CategoryImportant},
		{Category: mail.CategoryToDo},
		{Category: mail.CategorySpam},
		{Category: mail.CategoryNewsletter},
		{Category: mail.CategoryUnset},
		{Category: mail.CategoryError},
	}

	stats := proc.Stats(emails)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 2, stats.Important)
	assert.Equal(t, 1, stats.ToDo)
	assert.Equal(t, 1, stats.Spam)
	assert.Equal(t, 1, stats.Newsletter)
	assert.Equal(t, 2, stats.Unprocessed)
}

func TestParseActionsResponseJSON(t *testing.T) {
	resp := `Here you go: {"tasks": [{"task": "Send the deck", "priority": "high", "deadline": "Friday"}]}`

	tasks := ParseActionsResponse(resp)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Send the deck", tasks[0].Task)
	assert.Equal(t, mail.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "Friday", tasks[0].Deadline)
}

func TestParseActionsResponseSingleObject(t *testing.T) {
	tasks := ParseActionsResponse(`{"task": "Call Bob", "priority": "low"}`)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Call Bob", tasks[0].Task)
	assert.Equal(t, mail.PriorityLow, tasks[0].Priority)
}

// Malformed JSON falls through to line extraction, never errors
func TestParseActionsResponseMalformedJSON(t *testing.T) {
	resp := "{broken json\nPlease review the budget by March 12\nYou need to prepare the deck immediately"

	tasks := ParseActionsResponse(resp)

	require.Len(t, tasks, 2)
	assert.Equal(t, "Please review the budget by March 12", tasks[0].Task)
	assert.Equal(t, mail.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, "March 12", tasks[0].Deadline)
	assert.Equal(t, mail.PriorityHigh, tasks[1].Priority)
}

func TestParseActionsResponseFallback(t *testing.T) {
	tasks := ParseActionsResponse("The weather is lovely today")

	require.Len(t, tasks, 1)
	assert.Equal(t, "Review this email", tasks[0].Task)
	assert.Equal(t, mail.PriorityMedium, tasks[0].Priority)
}

func TestCleanCategory(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want mail.Category
	}{
		{"exact label", "Newsletter", mail.CategoryNewsletter},
		{"label in sentence", "This looks like Spam to me.", mail.CategorySpam},
		{"keyword fallback", "Sounds critical!", mail.CategoryImportant},
		{"todo keyword", "There is a task in here.", mail.CategoryToDo},
		{"default", "No idea.", mail.CategoryImportant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanCategory(tt.resp))
		})
	}
}
