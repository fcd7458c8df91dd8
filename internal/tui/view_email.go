package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderEmail() string {
	e := a.state.selected
	if e == nil {
		return a.renderInbox()
	}

	var b strings.Builder
	boxWidth := min(74, a.width-4)

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(truncate(e.Subject, boxWidth-2))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	meta := styleSubtitle.Render(fmt.Sprintf("From: %s  %s  %s", e.Sender, e.Timestamp, categoryBadge(e.Category)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	bodyBox := styleBox.
		Width(boxWidth).
		Render(wrapText(e.Body, boxWidth-4))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, bodyBox))
	b.WriteString("\n\n")

	if e.Summary != "" {
		summaryBox := styleBox.
			Width(boxWidth).
			BorderForeground(colorSecondary).
			Render("Summary\n\n" + wrapText(e.Summary, boxWidth-4))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, summaryBox))
		b.WriteString("\n\n")
	}

	if len(e.Actions) > 0 {
		var lines []string
		lines = append(lines, "Actions", "")
		for i, task := range e.Actions {
			line := fmt.Sprintf("%d. %s [%s]", i+1, task.Task, strings.ToUpper(string(task.Priority)))
			if task.Deadline != "" {
				line += " - Due: " + task.Deadline
			}
			lines = append(lines, wrapText(line, boxWidth-4))
		}
		actionsBox := styleBox.
			Width(boxWidth).
			BorderForeground(colorWarning).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
		b.WriteString("\n\n")
	}

	if e.DraftReply != "" {
		draftBox := styleBox.
			Width(boxWidth).
			BorderForeground(colorSuccess).
			Render("Draft Reply\n\n" + e.DraftReply)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, draftBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[s] Summarize  [x] Extract actions  [r] Draft reply  [a] Agent  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
