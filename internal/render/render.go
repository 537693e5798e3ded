// Package render styles the text written to a line session: colored
// fragments, error lines and the large banners shown for results.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color names the handful of colors the command output uses.
type Color string

const (
	Red     Color = "9"
	Green   Color = "10"
	Yellow  Color = "11"
	Blue    Color = "12"
	Magenta Color = "13"
)

// Printer renders strings for one output stream.
type Printer struct {
	renderer *lipgloss.Renderer
}

// New detects the color support of w. With force set, ANSI colors are used
// even when w is not a terminal, which is what remote telnet clients expect.
func New(w io.Writer, force bool) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if force {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{renderer: renderer}
}

// Plain returns a printer that never emits escape sequences.
func Plain() *Printer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)
	return &Printer{renderer: renderer}
}

// Color styles text; surrounding spaces are kept outside the escape codes
// so prompts keep their trailing gap.
func (p *Printer) Color(text string, color Color) string {
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	start := strings.Index(text, core)
	styled := p.renderer.NewStyle().
		Foreground(lipgloss.Color(string(color))).
		Render(core)
	return text[:start] + styled + text[start+len(core):]
}

func (p *Printer) Bold(text string, color Color) string {
	return p.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(color))).
		Render(text)
}

// Error formats msg as an error line.
func (p *Printer) Error(msg string) string {
	return p.Bold("Error", Red) + ": " + p.Color(msg, Red)
}

// Banner renders text large: spaced capitals inside a double border.
func (p *Printer) Banner(text string, color Color) string {
	letters := strings.Split(strings.ToUpper(strings.TrimSpace(text)), "")
	return p.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(color))).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(string(color))).
		Padding(1, 4).
		Render(strings.Join(letters, " "))
}
