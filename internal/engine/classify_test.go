package engine

import (
	"testing"

	"github.com/sant0-9/sift/internal/mail"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		sender  string
		subject string
		body    string
		want    mail.Category
	}{
		{
			name:    "urgency word in body",
			sender:  "someone@example.com",
			subject: "Status",
			body:    "This is urgent, handle it today.",
			want:    mail.CategoryImportant,
		},
		{
			name:    "urgency word in subject",
			sender:  "someone@example.com",
			subject: "URGENT: server down",
			body:    "The box is unreachable.",
			want:    mail.CategoryImportant,
		},
		{
			name:    "action request",
			sender:  "someone@example.com",
			subject: "Expense form",
			body:    "Please fill in the expense form.",
			want:    mail.CategoryToDo,
		},
		{
			name:    "newsletter",
			sender:  "someone@example.com",
			subject: "March newsletter",
			body:    "Here is what happened in the community.",
			want:    mail.CategoryNewsletter,
		},
		{
			name:    "spam",
			sender:  "someone@example.com",
			subject: "Special offer inside",
			body:    "Huge savings, buy now!",
			want:    mail.CategorySpam,
		},
		{
			name:    "corporate sender fallback",
			sender:  "jane@company.com",
			subject: "Lunch",
			body:    "Up for sushi?",
			want:    mail.CategoryImportant,
		},
		{
			name:    "newsletter sender fallback",
			sender:  "updates@blog.example.com",
			subject: "New posts",
			body:    "Fresh content this week.",
			want:    mail.CategoryNewsletter,
		},
		{
			name:    "default is Important",
			sender:  "stranger@example.org",
			subject: "Hello",
			body:    "Just saying hi.",
			want:    mail.CategoryImportant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.sender, tt.subject, tt.body)
			if got != tt.want {
				t.Errorf("Categorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Urgency outranks every other rule family, no matter what else matches
func TestCategorizeUrgencyWinsOverOtherLexicons(t *testing.T) {
	body := "Please subscribe to our newsletter for a special offer. This is urgent."
	got := Categorize("promo@shop.example.com", "Deals", body)
	if got != mail.CategoryImportant {
		t.Errorf("Categorize() = %v, want %v", got, mail.CategoryImportant)
	}
}

// Matching is literal substring search: a lexeme inside a longer word
// still counts. This is a design choice the tests pin down.
func TestCategorizeEmbeddedSubstringMatches(t *testing.T) {
	tests := []struct {
		name string
		body string
		want mail.Category
	}{
		{"deadline inside deadlines", "All deadlines were met last quarter.", mail.CategoryImportant},
		{"must inside mustard", "The sandwich had too much mustard.", mail.CategoryToDo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize("x@example.org", "Note", tt.body)
			if got != tt.want {
				t.Errorf("Categorize() = %v, want %v", got, tt.want)
			}
		})
	}
}
