package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderAgent() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	inputHeight := 4
	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === BUILD HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Email Agent")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	context := "No email selected"
	if a.state.selected != nil {
		context = "Selected: " + truncate(a.state.selected.Subject, 50)
	}
	contextLine := lipgloss.NewStyle().
		Foreground(colorMuted).
		Render(context)
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, contextLine))
	header.WriteString("\n\n")

	// === BUILD MESSAGE LINES ===
	var messageLines []string

	if len(a.state.history) == 0 {
		hints := []string{
			"Try asking:",
			`  "Summarize this email"`,
			`  "What tasks are in this email?"`,
			`  "Draft a reply to this"`,
			`  "What's urgent in my inbox?"`,
			`  "What are all my tasks?"`,
			`  "Any cleanup suggestions?"`,
			`  "Find project emails"`,
		}
		for _, h := range hints {
			messageLines = append(messageLines, indent+styleSubtitle.Render(h))
		}
	}

	for _, msg := range a.state.history {
		content := wrapText(msg.content, boxWidth-4)
		lines := strings.Split(content, "\n")
		if msg.role == "user" {
			for j, line := range lines {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range lines {
				styled := lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
				messageLines = append(messageLines, indent+styled)
			}
		}
		messageLines = append(messageLines, "")
	}

	// Keep the tail of the conversation visible
	if len(messageLines) > availableHeight {
		messageLines = messageLines[len(messageLines)-availableHeight:]
	}

	// === BUILD INPUT/STATUS ===
	var footer strings.Builder
	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	status := styleStatusBar.Render("[Enter] Ask  [Esc] Back")
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE ===
	var messageArea strings.Builder
	for i, line := range messageLines {
		messageArea.WriteString(line)
		if i < len(messageLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	padding := availableHeight - len(messageLines)
	if padding > 0 {
		if len(messageLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", padding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// wrapText wraps text to fit within maxWidth, preserving words and
// existing line breaks
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= maxWidth {
			result = append(result, paragraph)
			continue
		}

		var line strings.Builder
		lineLen := 0
		for i, word := range strings.Fields(paragraph) {
			if i > 0 && lineLen+1+len(word) > maxWidth {
				result = append(result, line.String())
				line.Reset()
				lineLen = 0
			} else if i > 0 {
				line.WriteString(" ")
				lineLen++
			}
			line.WriteString(word)
			lineLen += len(word)
		}
		result = append(result, line.String())
	}

	return strings.Join(result, "\n")
}
