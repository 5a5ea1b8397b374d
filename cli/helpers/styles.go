package helpers

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	bannerWidth  = 60
	sectionWidth = 40
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Styler renders text with lipgloss only when writing to a terminal, so
// piped and captured output stays plain.
type Styler struct {
	color bool
}

func NewStyler(w io.Writer) Styler {
	f, ok := w.(*os.File)
	if !ok {
		return Styler{}
	}
	return Styler{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s Styler) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func (s Styler) Title(text string) string {
	return s.render(titleStyle, text)
}

func (s Styler) Prompt(text string) string {
	return s.render(promptStyle, text)
}

func (s Styler) Label(text string) string {
	return s.render(labelStyle, text)
}

// Rule returns a horizontal line of n characters.
func Rule(char string, n int) string {
	return strings.Repeat(char, n)
}

// Enabled reports whether output is styled.
func (s Styler) Enabled() bool {
	return s.color
}
