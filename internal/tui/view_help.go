package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	pages := []string{
		"  i   Inbox - browse and process the demo emails",
		"  a   Agent - chat about your inbox",
		"  p   Prompt Brain - edit the stored prompts",
	}

	pagesBox := styleBox.
		Width(56).
		Render(strings.Join(pages, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, pagesBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Enter          Open / submit",
		"  j/k, arrows    Navigate lists",
		"  P              Process all emails (inbox)",
		"  f              Cycle category filter (inbox)",
		"  t              Show/hide read emails (inbox)",
		"  s / x / r      Summarize / extract / reply (email)",
		"  Esc            Go back / quit",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
