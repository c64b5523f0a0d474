package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/catalog/internal/pagination"
)

// Dots are used up to this many pages, numbers beyond.
const maxDotPages = 12

// Pager renders pagination controls. Page arithmetic lives in
// pagination.Controls; the bubbles paginator only draws the indicator.
type Pager struct {
	indicator paginator.Model
}

// NewPager creates a pager with the theme's dot glyphs.
func NewPager() Pager {
	p := paginator.New()
	p.ActiveDot = lipgloss.NewStyle().Foreground(PrimaryColor).Render("●")
	p.InactiveDot = lipgloss.NewStyle().Foreground(SubtleColor).Render("○")
	return Pager{indicator: p}
}

// View draws first/prev/indicator/next/last. Disabled controls are dimmed.
func (p Pager) View(c pagination.Controls) string {
	p.indicator.TotalPages = c.TotalPages
	p.indicator.Page = c.Page - 1
	p.indicator.Type = paginator.Dots
	if c.TotalPages > maxDotPages {
		p.indicator.Type = paginator.Arabic
	}

	parts := []string{
		control("« first", c.HasFirst),
		control("‹ prev", c.HasPrev),
		p.indicator.View(),
		HelpStyle.Render(fmt.Sprintf("page %d of %d", c.Page, c.TotalPages)),
		control("next ›", c.HasNext),
		control("last »", c.HasLast),
	}

	out := parts[0]
	for _, part := range parts[1:] {
		out = lipgloss.JoinHorizontal(lipgloss.Center, out, "  ", part)
	}
	return out
}

func control(label string, enabled bool) string {
	if enabled {
		return EnabledControlStyle.Render(label)
	}
	return DisabledControlStyle.Render(label)
}
