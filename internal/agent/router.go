// Package agent dispatches free-text queries to the email operations.
// Routing is an ordered list of (predicate, handler) pairs; the first
// predicate that matches wins, so later entries are true fallbacks.
package agent

import (
	"fmt"
	"strings"

	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/processor"
)

// Render caps for list-style responses
const (
	maxUrgentResults = 8
	maxSearchResults = 6
	maxTaskResults   = 10
)

// NoSelectionHelp is the fallback when nothing can be dispatched
const NoSelectionHelp = "I can help you analyze your emails! Please load your inbox first or select a specific email to discuss."

// Intent lexicons, matched case-insensitively against the query
var (
	summarizeIntent = []string{"summarize", "summary", "overview"}
	actionIntent    = []string{"task", "action", "todo", "do"}
	replyIntent     = []string{"reply", "respond", "draft"}
	urgentIntent    = []string{"urgent", "important", "priority"}
	cleanupIntent   = []string{"cleanup", "clean"}
	inboxIntent     = []string{"all", "inbox", "emails"}
	searchIntent    = []string{"find", "search", "look for"}
)

// Router answers chat queries against an email collection
type Router struct {
	processor *processor.Processor
	engine    *engine.Engine
	routes    []route
}

type query struct {
	raw      string
	lower    string
	emails   []*mail.Email
	selected *mail.Email
}

type route struct {
	match  func(q *query) bool
	handle func(q *query) string
}

// New creates a router
func New(proc *processor.Processor, eng *engine.Engine) *Router {
	r := &Router{processor: proc, engine: eng}
	r.routes = []route{
		{r.wantsSelected(summarizeIntent), r.summarizeSelected},
		{r.wantsSelected(actionIntent), r.actionsForSelected},
		{r.wantsSelected(replyIntent), r.replyForSelected},
		{r.wants(urgentIntent), r.urgentEmails},
		{r.wantsUnselected(actionIntent), r.allTasks},
		{r.wants(cleanupIntent), r.cleanupSuggestions},
		{r.wants(inboxIntent), r.inboxOverview},
		{r.wants(searchIntent), r.searchEmails},
	}
	return r
}

// Respond dispatches the query. selected may be nil.
func (r *Router) Respond(text string, emails []*mail.Email, selected *mail.Email) string {
	q := &query{
		raw:      text,
		lower:    strings.ToLower(text),
		emails:   emails,
		selected: selected,
	}

	for _, rt := range r.routes {
		if rt.match(q) {
			return rt.handle(q)
		}
	}
	return r.general(q)
}

func (r *Router) wants(words []string) func(q *query) bool {
	return func(q *query) bool {
		return containsAny(q.lower, words)
	}
}

func (r *Router) wantsSelected(words []string) func(q *query) bool {
	return func(q *query) bool {
		return q.selected != nil && containsAny(q.lower, words)
	}
}

func (r *Router) wantsUnselected(words []string) func(q *query) bool {
	return func(q *query) bool {
		return q.selected == nil && containsAny(q.lower, words)
	}
}

func (r *Router) summarizeSelected(q *query) string {
	summary := r.processor.Summarize(q.selected)
	return fmt.Sprintf("Summary of '%s':\n\n%s", q.selected.Subject, summary)
}

// actionsForSelected returns the email's cached actions, extracting and
// caching them on first use
func (r *Router) actionsForSelected(q *query) string {
	e := q.selected
	if len(e.Actions) == 0 {
		e.Actions = r.processor.ExtractActions(e)
	}

	if len(e.Actions) == 0 {
		return fmt.Sprintf("No specific actions found in '%s'. This email may be informational only.", e.Subject)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Actions from '%s':\n\n", e.Subject)
	for i, task := range e.Actions {
		fmt.Fprintf(&b, "%d. %s", i+1, task.Task)
		if task.Priority != "" {
			fmt.Fprintf(&b, " - Priority: %s", strings.ToUpper(string(task.Priority)))
		}
		if task.Deadline != "" {
			fmt.Fprintf(&b, " - Deadline: %s", task.Deadline)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Router) replyForSelected(q *query) string {
	draft := r.processor.DraftReply(q.selected)
	return fmt.Sprintf("Draft Reply for '%s':\n\n%s\n\nRemember to review and edit before sending!", q.selected.Subject, draft)
}

func (r *Router) urgentEmails(q *query) string {
	var urgent []*mail.Email
	for _, e := range q.emails {
		if e.Category == mail.CategoryImportant || e.Category == mail.CategoryToDo {
			urgent = append(urgent, e)
		}
	}

	if len(urgent) == 0 {
		return "No urgent emails found! Your inbox looks good."
	}

	if len(urgent) > maxUrgentResults {
		urgent = urgent[:maxUrgentResults]
	}

	var b strings.Builder
	b.WriteString("Urgent/Important Emails:\n\n")
	for _, e := range urgent {
		fmt.Fprintf(&b, "- %s (From: %s)\n", e.Subject, e.Sender)
		if e.Summary != "" {
			fmt.Fprintf(&b, "  %s...\n", clip(e.Summary, 100))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// allTasks aggregates the actions cached on the collection. Emails that
// were never extracted contribute nothing; this reads caches, it does
// not fill them.
func (r *Router) allTasks(q *query) string {
	var tasks []mail.Task
	for _, e := range q.emails {
		tasks = append(tasks, e.Actions...)
	}

	if len(tasks) == 0 {
		return "No tasks found in your emails."
	}

	if len(tasks) > maxTaskResults {
		tasks = tasks[:maxTaskResults]
	}

	var b strings.Builder
	b.WriteString("All Extracted Tasks:\n\n")
	for i, task := range tasks {
		fmt.Fprintf(&b, "%d. %s", i+1, task.Task)
		if task.Priority != "" {
			fmt.Fprintf(&b, " [%s]", strings.ToUpper(string(task.Priority)))
		}
		if task.Deadline != "" {
			fmt.Fprintf(&b, " - Due: %s", task.Deadline)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Router) cleanupSuggestions(q *query) string {
	var spam, newsletters int
	for _, e := range q.emails {
		switch e.Category {
		case mail.CategorySpam:
			spam++
		case mail.CategoryNewsletter:
			newsletters++
		}
	}

	var b strings.Builder
	b.WriteString("Cleanup Suggestions:\n\n")
	if spam > 0 {
		fmt.Fprintf(&b, "- You have %d spam emails that can be deleted\n", spam)
	}
	if newsletters > 0 {
		fmt.Fprintf(&b, "- You have %d newsletters that can be archived\n", newsletters)
	}
	if spam == 0 && newsletters == 0 {
		b.WriteString("Your inbox looks clean! No obvious cleanup needed.")
	}
	return b.String()
}

func (r *Router) inboxOverview(q *query) string {
	stats := r.processor.Stats(q.emails)

	var b strings.Builder
	b.WriteString("Inbox Overview:\n\n")
	fmt.Fprintf(&b, "- Total Emails: %d\n", stats.Total)
	fmt.Fprintf(&b, "- Important: %d\n", stats.Important)
	fmt.Fprintf(&b, "- To-Do: %d\n", stats.ToDo)
	fmt.Fprintf(&b, "- Newsletter: %d\n", stats.Newsletter)
	fmt.Fprintf(&b, "- Spam: %d\n\n", stats.Spam)

	if stats.ToDo > 3 {
		b.WriteString("You have several action items. Consider prioritizing them!\n")
	}
	if stats.Spam > 5 {
		b.WriteString("You have spam emails that can be cleaned up.\n")
	}
	if stats.Important == 0 && stats.ToDo == 0 {
		b.WriteString("Your inbox looks quiet! No urgent items.\n")
	}
	return b.String()
}

func (r *Router) searchEmails(q *query) string {
	terms := q.lower
	for _, intent := range searchIntent {
		terms = strings.ReplaceAll(terms, intent, "")
	}
	terms = strings.TrimSpace(terms)

	var matches []*mail.Email
	for _, e := range q.emails {
		if strings.Contains(strings.ToLower(e.Subject), terms) ||
			strings.Contains(strings.ToLower(e.Body), terms) ||
			strings.Contains(strings.ToLower(e.Sender), terms) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No emails found matching '%s'. Try different search terms.", terms)
	}

	total := len(matches)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d emails matching '%s':\n\n", total, terms)
	for _, e := range matches {
		fmt.Fprintf(&b, "- %s (From: %s)\n", e.Subject, e.Sender)
		if e.Category != mail.CategoryUnset {
			fmt.Fprintf(&b, "  Category: %s\n", e.Category)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// general forwards the question plus the selected email to the engine,
// or returns static guidance when nothing is selected
func (r *Router) general(q *query) string {
	if q.selected == nil {
		return NoSelectionHelp
	}

	context := fmt.Sprintf(
		"User is asking about this email:\nSubject: %s\nFrom: %s\nBody: %s\n\nUser's question: %s",
		q.selected.Subject, q.selected.Sender, q.selected.Body, q.raw,
	)
	resp := r.engine.Generate("Answer this question about the email: " + context)
	return fmt.Sprintf("Regarding '%s':\n\n%s", q.selected.Subject, resp)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// clip returns at most maxLen bytes of s. The urgent listing appends
// its own ellipsis regardless of length.
func clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
