package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/catalog/internal/catalog"
)

var viewModeLabels = []struct {
	mode  catalog.ViewMode
	label string
}{
	{catalog.ViewList, "☰ List"},
	{catalog.ViewCard, "▦ Cards"},
}

// RenderViewToggle draws a two-segment control with the active mode highlighted.
func RenderViewToggle(active catalog.ViewMode) string {
	segments := make([]string, 0, len(viewModeLabels))
	for _, v := range viewModeLabels {
		style := InactiveSegmentStyle
		if v.mode == active {
			style = ActiveSegmentStyle
		}
		segments = append(segments, style.Render(v.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, segments...)
}
