package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Printer writes styled components to an output stream. Commands that print
// once and exit use it instead of a full interactive program.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer for w, or os.Stdout if w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width components are rendered at.
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintFooter prints a muted line under the output.
func (p *Printer) PrintFooter(text string) {
	p.Println(FooterStyle.Render(text))
}

// RunOnceModel is a Bubble Tea model that renders its content once and quits.
type RunOnceModel struct {
	content string
}

// NewRunOnceModel creates a model that will render content and exit
func NewRunOnceModel(content string) RunOnceModel {
	return RunOnceModel{content: content}
}

// Init implements tea.Model
func (m RunOnceModel) Init() tea.Cmd {
	return tea.Quit
}

// Update implements tea.Model
func (m RunOnceModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View implements tea.Model
func (m RunOnceModel) View() string {
	return m.content
}

// RenderOnce renders content through Bubble Tea's renderer and exits.
func RenderOnce(content string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithOutput(os.Stdout), tea.WithInput(nil)}, opts...)
	_, err := tea.NewProgram(NewRunOnceModel(content), opts...).Run()
	return err
}
