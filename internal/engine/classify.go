package engine

import (
	"strings"

	"github.com/sant0-9/sift/internal/mail"
)

// Category lexicons, checked in strict priority order. Matching is plain
// case-insensitive substring search: a lexeme inside a longer word still
// counts, and the first family that hits decides the category.
var (
	urgentWords     = []string{"urgent", "asap", "immediately", "deadline", "important", "critical"}
	actionWords     = []string{"please", "need", "request", "action required", "todo", "task", "required", "must"}
	newsletterWords = []string{"newsletter", "digest", "weekly update", "monthly report", "subscription"}
	spamWords       = []string{"promotion", "special offer", "discount", "buy now", "limited time", "click here"}

	importantSenders  = []string{"@company.com", "@corp.com", "manager", "hr@"}
	newsletterSenders = []string{"newsletter@", "digest@", "updates@"}
)

// Categorize maps an email's sender, subject and body to exactly one
// category. Defaults to Important when nothing matches.
func Categorize(sender, subject, body string) mail.Category {
	text := strings.ToLower(subject + " " + body)
	from := strings.ToLower(sender)

	switch {
	case containsAny(text, urgentWords):
		return mail.CategoryImportant
	case containsAny(text, actionWords):
		return mail.CategoryToDo
	case containsAny(text, newsletterWords):
		return mail.CategoryNewsletter
	case containsAny(text, spamWords):
		return mail.CategorySpam
	case containsAny(from, importantSenders):
		return mail.CategoryImportant
	case containsAny(from, newsletterSenders):
		return mail.CategoryNewsletter
	default:
		return mail.CategoryImportant
	}
}

// containsAny reports whether any word is a substring of text.
// text must already be lowercased.
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
