package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Modal draws a titled panel centered over a dimmed backdrop. It has no
// state of its own; the caller decides whether it is open.
type Modal struct {
	Title string
	Width int
}

// NewModal creates a modal of the default width.
func NewModal(title string) Modal {
	return Modal{Title: title, Width: DefaultModalWidth}
}

// InnerWidth is the width available to the body.
func (m Modal) InnerWidth(terminalWidth int) int {
	// border (2) + horizontal padding (4)
	return SafeModalWidth(m.Width, terminalWidth) - 6
}

// Render returns "" when closed. When open it returns the panel with body
// and the close control, placed over the whole terminal.
func (m Modal) Render(open bool, body string, terminalWidth, terminalHeight int) string {
	if !open {
		return ""
	}

	terminalWidth = max(terminalWidth, MinTerminalWidth)
	terminalHeight = max(terminalHeight, MinTerminalHeight)
	inner := m.InnerWidth(terminalWidth)

	title := TitleStyle.Render(m.Title)
	closeCtl := HelpStyle.Render("[esc] ✕")
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(closeCtl), 1)
	titleBar := lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), closeCtl)

	panel := ModalStyle.
		Width(inner + 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, titleBar, "", body))

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		panel,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(BackdropColor),
	)
}
