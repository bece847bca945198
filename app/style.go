package app

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"hop.computer/seqs/config"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var red = lipgloss.Color("#cc241d")
var green = lipgloss.Color("#98971a")
var yellow = lipgloss.Color("#d79921")
var blue = lipgloss.Color("#458588")
var purple = lipgloss.Color("#b16286")

// ColorEnabled reports whether output written to w should be colorized under
// the given Color setting. In auto mode, only terminals get color.
func ColorEnabled(setting string, w io.Writer) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// painter renders list contents and step lines, with or without color.
type painter struct {
	color bool
	sep   string

	head   lipgloss.Style
	tail   lipgloss.Style
	value  lipgloss.Style
	step   lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
}

func newPainter(w io.Writer, color bool, sep string) *painter {
	r := lipgloss.NewRenderer(w)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &painter{
		color:  color,
		sep:    sep,
		head:   r.NewStyle().Foreground(green).Bold(true),
		tail:   r.NewStyle().Foreground(blue).Bold(true),
		value:  r.NewStyle(),
		step:   r.NewStyle().Foreground(yellow),
		result: r.NewStyle().Foreground(purple).Italic(true),
		err:    r.NewStyle().Foreground(red).Bold(true),
	}
}

func (p *painter) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// values joins values with the configured separator, marking the head and tail
// elements when color is on.
func (p *painter) values(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		switch i {
		case 0:
			out[i] = p.paint(p.head, v)
		case len(values) - 1:
			out[i] = p.paint(p.tail, v)
		default:
			out[i] = p.paint(p.value, v)
		}
	}
	return strings.Join(out, p.sep)
}
