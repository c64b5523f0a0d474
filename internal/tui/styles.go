package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/catalog/internal/version"
)

// Application branding constants
const (
	AppName = "PRODUCT CATALOG"
	RepoURL = "github.com/muurk/catalog"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Short()
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 72  // Minimum supported terminal width
	MinTerminalHeight = 20  // Below this the footer is dropped
	DefaultModalWidth = 64  // Form modal width before clamping
	CardWidth         = 34  // Outer width of one product card
	MaxContentWidth   = 160 // Content is capped at this width
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
	BackdropColor   = lipgloss.Color("240")     // Dimmed modal backdrop
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Inline validation message under a form field
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	RequiredMarkStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	// Search box, unfocused and focused
	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	FocusedSearchStyle = SearchStyle.
				BorderForeground(PrimaryColor)

	// Segmented view toggle
	ActiveSegmentStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	InactiveSegmentStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 1)

	// Table cells
	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	SelectedCellStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 1)

	// Cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1).
			Width(CardWidth - 2)

	SelectedCardStyle = CardStyle.
				BorderForeground(HighlightColor)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	PriceStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	OutOfStockStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Pager controls
	EnabledControlStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	DisabledControlStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Faint(true)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			Padding(1, 2)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)
)

// BuildHeaderContent creates header content with app name and repository URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(RepoURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return HelpStyle.Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header, content, and a footer with context-sensitive help.
//
//	func (m AppModel) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.helpView(), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	terminalWidth = max(terminalWidth, MinTerminalWidth)
	terminalHeight = max(terminalHeight, MinTerminalHeight)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	styledHeader := headerStyle.Render(BuildHeaderContent())
	styledFooter := footerStyle.Render(BuildFooterContent(footerText))

	// Content fills whatever height is left between header and footer
	contentHeight := terminalHeight - 2 - lipgloss.Height(styledHeader) - lipgloss.Height(styledFooter)
	styledContent := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(max(contentHeight, 1)).
		MaxHeight(max(contentHeight, 1)).
		Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, styledHeader, styledContent, styledFooter)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// SafeModalWidth returns requestedWidth, shrunk to fit the terminal.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := max(terminalWidth-4, 40)
	return min(requestedWidth, maxWidth)
}

// ContentWidth is the usable width inside the application container.
func ContentWidth(terminalWidth int) int {
	return min(max(terminalWidth, MinTerminalWidth), MaxContentWidth) - 4
}
