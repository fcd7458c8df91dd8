// Package processor runs emails through the engine using the stored
// prompts. The prompt text travels with every request but the engine
// routes on its verbs only; editing a prompt changes what is sent, not
// how the lexicons match.
package processor

import (
	"fmt"
	"strings"

	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/prompts"
)

// FailedSummary marks an email the pipeline could not process
const FailedSummary = "Failed to process email"

// Processor ties the engine to the prompt store
type Processor struct {
	engine *engine.Engine
	store  *prompts.Store
}

// New creates a processor
func New(eng *engine.Engine, store *prompts.Store) *Processor {
	return &Processor{engine: eng, store: store}
}

// ProcessEmail categorizes, extracts and summarizes one email in place.
// A failure never escapes: the email is left in a degraded but complete
// state so a batch can continue with the rest.
func (p *Processor) ProcessEmail(e *mail.Email) *mail.Email {
	defer func() {
		if r := recover(); r != nil {
			e.Category = mail.CategoryError
			e.Actions = []mail.Task{}
			e.Summary = FailedSummary
		}
	}()

	e.Category = p.Categorize(e)

	if e.Category == mail.CategoryToDo {
		e.Actions = p.ExtractActions(e)
	} else {
		e.Actions = []mail.Task{}
	}

	e.Summary = p.Summarize(e)
	return e
}

// ProcessBatch processes every email independently
func (p *Processor) ProcessBatch(emails []*mail.Email) {
	for _, e := range emails {
		p.ProcessEmail(e)
	}
}

// Categorize asks the engine for a category and cleans the response
func (p *Processor) Categorize(e *mail.Email) mail.Category {
	context := fmt.Sprintf("EMAIL DETAILS:\nFrom: %s\nSubject: %s\nBody: %s", e.Sender, e.Subject, e.Body)
	resp := p.generate(prompts.KeyCategorization, context)
	return cleanCategory(resp)
}

// ExtractActions asks the engine for tasks and parses the response
func (p *Processor) ExtractActions(e *mail.Email) []mail.Task {
	context := fmt.Sprintf("EMAIL CONTENT:\n%s", e.Body)
	resp := p.generate(prompts.KeyActionExtraction, context)
	return ParseActionsResponse(resp)
}

// Summarize asks the engine for a synopsis
func (p *Processor) Summarize(e *mail.Email) string {
	context := fmt.Sprintf("FROM: %s\nSUBJECT: %s\nBODY: %s", e.Sender, e.Subject, e.Body)
	return strings.TrimSpace(p.generate(prompts.KeySummarization, context))
}

// DraftReply asks the engine for a reply draft
func (p *Processor) DraftReply(e *mail.Email) string {
	context := fmt.Sprintf("ORIGINAL EMAIL:\nFrom: %s\nSubject: %s\nBody: %s", e.Sender, e.Subject, e.Body)
	return strings.TrimSpace(p.generate(prompts.KeyAutoReply, context))
}

// Stats counts processed emails per category
func (p *Processor) Stats(emails []*mail.Email) mail.Stats {
	stats := mail.Stats{Total: len(emails)}
	for _, e := range emails {
		switch e.Category {
		case mail.CategoryImportant:
			stats.Important++
		case mail.CategoryNewsletter:
			stats.Newsletter++
		case mail.CategorySpam:
			stats.Spam++
		case mail.CategoryToDo:
			stats.ToDo++
		default:
			stats.Unprocessed++
		}
	}
	return stats
}

// generate prepends the stored prompt for key to the email context
func (p *Processor) generate(key, context string) string {
	return p.engine.Generate(p.store.Get(key) + "\n\n" + context)
}

var validCategories = []mail.Category{
	mail.CategoryImportant,
	mail.CategoryNewsletter,
	mail.CategorySpam,
	mail.CategoryToDo,
}

// cleanCategory extracts a valid category name from a free-text response,
// with a keyword fallback when none is present
func cleanCategory(resp string) mail.Category {
	lower := strings.ToLower(resp)

	for _, c := range validCategories {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c
		}
	}

	switch {
	case containsAny(lower, []string{"urgent", "important", "critical"}):
		return mail.CategoryImportant
	case containsAny(lower, []string{"newsletter", "digest", "update"}):
		return mail.CategoryNewsletter
	case containsAny(lower, []string{"task", "action", "todo", "to-do", "please"}):
		return mail.CategoryToDo
	default:
		return mail.CategoryImportant
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
