package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ███████╗██╗███████╗████████╗
 ██╔════╝██║██╔════╝╚══██╔══╝
 ███████╗██║█████╗     ██║
 ╚════██║██║██╔══╝     ██║
 ███████║██║██║        ██║
 ╚══════╝╚═╝╚═╝        ╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Inbox Assistant")

	instructions := styleSubtitle.Render("\n[i] Inbox   [a] Agent   [p] Prompt Brain")

	statusBar := styleStatusBar.Render("[Esc] Quit  [?] Help")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		instructions,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
