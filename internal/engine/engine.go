// Package engine is the pattern-matching stand-in for a language model.
// Every operation is deterministic keyword and regex matching over fixed
// lexicons; there is no network and no inference.
package engine

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sant0-9/sift/internal/mail"
)

// GenericResponse is returned when a request matches no known verb
const GenericResponse = "I've processed your email request successfully."

// Engine answers free-text requests about emails. It is stateless; the
// type exists so callers can take it as a constructor dependency.
type Engine struct{}

// New creates an engine
func New() *Engine {
	return &Engine{}
}

var (
	senderRe  = regexp.MustCompile(`(?i)FROM:\s*([^\n]+)`)
	subjectRe = regexp.MustCompile(`(?i)SUBJECT:\s*([^\n]+)`)
	bodyRe    = regexp.MustCompile(`(?is)BODY:\s*(.+)`)
)

// promptEmail is the email content recovered from a free-text request
type promptEmail struct {
	Sender  string
	Subject string
	Body    string
}

// Generate routes a free-text request to one of the matchers based on the
// verbs it contains, and returns the matcher's literal output.
func (e *Engine) Generate(prompt string) string {
	lower := strings.ToLower(prompt)
	email := parsePromptEmail(prompt)

	switch {
	case strings.Contains(lower, "categorize"):
		return string(Categorize(email.Sender, email.Subject, email.Body))

	case strings.Contains(lower, "extract") && strings.Contains(lower, "action"):
		return encodeTasks(ExtractActions(email.Body))

	case strings.Contains(lower, "summarize"), strings.Contains(lower, "summary"):
		return Summarize(email.Subject, email.Body)

	case strings.Contains(lower, "reply"), strings.Contains(lower, "draft"):
		return DraftReply(email.Subject, email.Body)
	}

	return GenericResponse
}

// parsePromptEmail pulls FROM/SUBJECT/BODY sections out of a request.
// Without a structured BODY the whole prompt is treated as the body.
func parsePromptEmail(prompt string) promptEmail {
	email := promptEmail{Body: prompt}

	if m := senderRe.FindStringSubmatch(prompt); m != nil {
		email.Sender = strings.TrimSpace(m[1])
	}
	if m := subjectRe.FindStringSubmatch(prompt); m != nil {
		email.Subject = strings.TrimSpace(m[1])
	}
	if m := bodyRe.FindStringSubmatch(prompt); m != nil {
		email.Body = strings.TrimSpace(m[1])
	}

	return email
}

func encodeTasks(tasks []mail.Task) string {
	data, err := json.Marshal(map[string][]mail.Task{"tasks": tasks})
	if err != nil {
		return GenericResponse
	}
	return string(data)
}
