package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/sift/internal/prompts"
)

// Short labels for the prompt keys in display order
var promptLabels = map[string]string{
	prompts.KeyCategorization:   "Categorization",
	prompts.KeyActionExtraction: "Action Extraction",
	prompts.KeySummarization:    "Summarization",
	prompts.KeyAutoReply:        "Auto Reply",
}

func (a *App) renderPrompts() string {
	if a.state.editing {
		return a.renderPromptEditor()
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Prompt Brain")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Edit the prompts sent with every request")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	if a.state.storeErr != nil {
		errBox := styleBox.
			Width(min(64, a.width-4)).
			BorderForeground(colorError).
			Render("Prompt store error: " + a.state.storeErr.Error())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
		b.WriteString("\n\n")
	}

	var lines []string
	for i, key := range prompts.Keys {
		cursor := "  "
		if i == a.state.promptCursor {
			cursor = "> "
		}

		label := fmt.Sprintf("%s%-18s", cursor, promptLabels[key])
		if i == a.state.promptCursor {
			label = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(label)
		}
		lines = append(lines, label)
		lines = append(lines, styleSubtitle.Render("    "+truncate(a.state.store.Get(key), 58)))
	}

	listBox := styleBox.
		Width(min(64, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	parts := []string{"[j/k] Navigate  [Enter] Edit  [r] Reset defaults  [Esc] Back"}
	if a.state.statusMsg != "" {
		parts = append([]string{a.state.statusMsg}, parts...)
	}
	status := styleStatusBar.Render(strings.Join(parts, "  "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderPromptEditor() string {
	var b strings.Builder

	key := prompts.Keys[a.state.promptCursor]
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Edit: " + promptLabels[key])
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	editorBox := styleBox.
		Width(min(68, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.promptEditor.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, editorBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Ctrl+S] Save  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
