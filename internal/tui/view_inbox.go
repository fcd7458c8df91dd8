package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/sift/internal/mail"
)

func (a *App) renderInbox() string {
	var b strings.Builder
	emails := a.visibleEmails()

	heading := fmt.Sprintf("Inbox (%d emails)", len(emails))
	if a.state.filter != mail.CategoryUnset {
		heading = fmt.Sprintf("Inbox - %s (%d)", a.state.filter, len(emails))
	}
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(78, a.width-4)

	var rows []string
	for i, e := range emails {
		cursor := "  "
		if i == a.state.cursor {
			cursor = "> "
		}

		unread := " "
		if !e.Read {
			unread = styleUnread.Render("*")
		}

		subject := truncate(e.Subject, 42)
		row := fmt.Sprintf("%s%s %-44s %s", cursor, unread, subject, categoryBadge(e.Category))
		if i == a.state.cursor {
			row = lipgloss.NewStyle().Bold(true).Render(row)
		}
		rows = append(rows, row)
		rows = append(rows, styleSubtitle.Render(fmt.Sprintf("     %s  %s", e.Sender, e.Timestamp)))
	}

	if len(rows) == 0 {
		empty := "  No emails loaded"
		if a.state.filter != mail.CategoryUnset {
			empty = "  No emails in this category"
		}
		rows = append(rows, styleSubtitle.Render(empty))
	}

	listBox := styleBox.
		Width(boxWidth).
		Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	// Category counts once anything is processed
	stats := a.state.processor.Stats(a.state.emails)
	if stats.Unprocessed < stats.Total {
		counts := fmt.Sprintf("%s %d   %s %d   %s %d   %s %d",
			categoryStyle(mail.CategoryImportant).Render("Important:"), stats.Important,
			categoryStyle(mail.CategoryToDo).Render("To-Do:"), stats.ToDo,
			categoryStyle(mail.CategoryNewsletter).Render("Newsletter:"), stats.Newsletter,
			categoryStyle(mail.CategorySpam).Render("Spam:"), stats.Spam,
		)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, counts))
		b.WriteString("\n\n")
	}

	var status string
	if a.state.processing {
		status = styleStatusBar.Render("Processing emails...")
	} else {
		parts := []string{"[j/k] Navigate  [Enter] Open  [P] Process all  [f] Filter  [t] Toggle read  [a] Agent  [Esc] Back"}
		if a.state.statusMsg != "" {
			parts = append([]string{a.state.statusMsg}, parts...)
		}
		status = styleStatusBar.Render(strings.Join(parts, "  "))
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
