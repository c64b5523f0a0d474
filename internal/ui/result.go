package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success, failure, or warning
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is a bordered box summarizing the outcome of a command.
type Result struct {
	Type    ResultType
	Title   string  // e.g., "Preferences written"
	Details []Param // Key-value details to display
	Error   error   // Failure cause
	Hints   []string
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, hints ...string) *Result {
	return &Result{Type: ResultWarning, Title: title, Hints: hints, Width: GetTerminalWidth()}
}

// SetWidth sets the width for rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := ClampWidth(r.Width)

	var (
		color  lipgloss.Color
		marker string
		label  string
	)
	switch r.Type {
	case ResultFailure:
		color, marker, label = ErrorColor, FailureMarker, "FAILED"
	case ResultWarning:
		color, marker, label = WarningColor, WarningMarker, "NOTICE"
	default:
		color, marker, label = SuccessColor, SuccessMarker, "SUCCESS"
	}

	title := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf(" %s  %s  ─  %s", marker, label, r.Title))
	lines := []string{"", title, ""}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render(" Error: "+r.Error.Error()), "")
	}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if len(r.Hints) > 0 {
		lines = append(lines, r.renderHints(width), "")
	}

	return boxStyle(lipgloss.DoubleBorder(), color, width).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderHints(width int) string {
	lines := []string{HintTitleStyle.Render("Try:"), ""}
	for _, hint := range r.Hints {
		lines = append(lines, HintItemStyle.Render("  • "+hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
