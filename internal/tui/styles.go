package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/sift/internal/mail"
)

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Unread marker in the inbox list
	styleUnread = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)
)

// categoryStyle colors a category badge
func categoryStyle(c mail.Category) lipgloss.Style {
	switch c {
	case mail.CategoryImportant:
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	case mail.CategoryToDo:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case mail.CategoryNewsletter:
		return lipgloss.NewStyle().Foreground(colorSecondary)
	case mail.CategorySpam:
		return lipgloss.NewStyle().Foreground(colorMuted)
	case mail.CategoryError:
		return lipgloss.NewStyle().Foreground(colorError)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

// categoryBadge renders a fixed-width category label
func categoryBadge(c mail.Category) string {
	label := string(c)
	if c == mail.CategoryUnset {
		label = "-"
	}
	return categoryStyle(c).Render(label)
}
